package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"qrforge/internal/domain/scan"
)

type ScanRepository struct {
	pool *pgxpool.Pool
}

func NewScanRepository(pool *pgxpool.Pool) *ScanRepository {
	return &ScanRepository{pool: pool}
}

func (r *ScanRepository) Insert(ctx context.Context, e *scan.Event) error {
	const query = `
		INSERT INTO scans (id, qr_code_id, ip_hash, device_type, os, browser, referrer, scanned_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.QRCodeID, e.IPHash, string(e.DeviceType), e.OS, e.Browser, e.Referrer, e.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}
