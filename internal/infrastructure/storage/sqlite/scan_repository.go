package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"qrforge/internal/domain/scan"
)

type ScanRepository struct {
	db *sql.DB
}

func NewScanRepository(db *sql.DB) *ScanRepository {
	return &ScanRepository{db: db}
}

func (r *ScanRepository) Insert(ctx context.Context, e *scan.Event) error {
	const query = `
		INSERT INTO scans (id, qr_code_id, ip_hash, device_type, os, browser, referrer, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, NULLIF(?, ''), ?)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.QRCodeID, e.IPHash, string(e.DeviceType), e.OS, e.Browser, e.Referrer, e.ScannedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}
