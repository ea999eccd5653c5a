package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/qrcode"
	"qrforge/internal/infrastructure/storage"
)

const qrCodeColumns = `id, user_id, name, type, short_code, destination_url, content, style,
		       folder_id, created_at, updated_at`

type QRCodeRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewQRCodeRepository(pool *pgxpool.Pool, log *slog.Logger) *QRCodeRepository {
	return &QRCodeRepository{
		pool: pool,
		log:  log.With("component", "qrcode_repository"),
	}
}

func (r *QRCodeRepository) FindByShortCode(ctx context.Context, code string) (*qrcode.Record, error) {
	const query = `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE short_code = $1`

	rec, err := scanQRCode(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, qrcode.ErrNotFound
		case errors.Is(err, storage.ErrUndecodable):
			// A destination URL still works without content or style.
			r.log.Warn("stored qr code does not decode", "qr_code_id", rec.ID, "error", err)
			return rec, nil
		}
		return nil, fmt.Errorf("find qr code by short code: %w", err)
	}
	return rec, nil
}

func (r *QRCodeRepository) Get(ctx context.Context, ownerID, id uuid.UUID) (*qrcode.Record, error) {
	const query = `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE id = $1 AND user_id = $2`

	rec, err := scanQRCode(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, qrcode.ErrNotFound
		}
		r.log.Error("failed to get qr code", "qr_code_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get qr code: %w", err)
	}
	return rec, nil
}

func (r *QRCodeRepository) List(ctx context.Context, ownerID uuid.UUID, filter qrcode.ListFilter) ([]qrcode.Record, error) {
	const query = `
		SELECT ` + qrCodeColumns + `
		FROM qr_codes
		WHERE user_id = $1 AND ($2::uuid IS NULL OR folder_id = $2)
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID, filter.FolderID)
	if err != nil {
		r.log.Error("failed to list qr codes", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list qr codes: %w", err)
	}
	defer rows.Close()

	recs := make([]qrcode.Record, 0)
	for rows.Next() {
		rec, err := scanQRCode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan qr code: %w", err)
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate qr codes: %w", err)
	}
	return recs, nil
}

func (r *QRCodeRepository) Create(ctx context.Context, rec *qrcode.Record) error {
	const query = `
		INSERT INTO qr_codes (id, user_id, name, type, short_code, destination_url, content, style,
		                      folder_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	contentJSON, err := storage.MarshalContent(rec.Content)
	if err != nil {
		return err
	}
	styleJSON, err := storage.MarshalStyle(rec.Style)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		rec.ID, rec.OwnerID, rec.Name, string(rec.Kind), rec.ShortCode, rec.DestinationURL,
		contentJSON, styleJSON, rec.FolderID, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		switch {
		case isViolation(err, codeUniqueViolation):
			return qrcode.ErrShortCodeTaken
		case isViolation(err, codeForeignKeyViolation):
			return qrcode.ErrFolderNotFound
		}
		r.log.Error("failed to create qr code", "owner_id", rec.OwnerID, "error", err)
		return fmt.Errorf("create qr code: %w", err)
	}
	return nil
}

func (r *QRCodeRepository) UpdateDestination(ctx context.Context, ownerID, id uuid.UUID, destination string) error {
	const query = `
		UPDATE qr_codes SET destination_url = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND type = 'dynamic'`

	tag, err := r.pool.Exec(ctx, query, id, ownerID, destination)
	if err != nil {
		return fmt.Errorf("update destination: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return qrcode.ErrNotFound
	}
	return nil
}

func (r *QRCodeRepository) UpdateFolder(ctx context.Context, ownerID, id uuid.UUID, folderID *uuid.UUID) error {
	const query = `
		UPDATE qr_codes SET folder_id = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID, folderID)
	if err != nil {
		if isViolation(err, codeForeignKeyViolation) {
			return qrcode.ErrFolderNotFound
		}
		return fmt.Errorf("update folder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return qrcode.ErrNotFound
	}
	return nil
}

func (r *QRCodeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM qr_codes WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete qr code", "qr_code_id", id, "error", err)
		return fmt.Errorf("delete qr code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return qrcode.ErrNotFound
	}
	return nil
}

func (r *QRCodeRepository) CountDynamic(ctx context.Context, ownerID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM qr_codes WHERE user_id = $1 AND type = 'dynamic'`

	var n int
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count dynamic qr codes: %w", err)
	}
	return n, nil
}

func scanQRCode(row pgx.Row) (*qrcode.Record, error) {
	var (
		rec         qrcode.Record
		kind        string
		contentJSON []byte
		styleJSON   []byte
	)
	err := row.Scan(
		&rec.ID, &rec.OwnerID, &rec.Name, &kind, &rec.ShortCode, &rec.DestinationURL,
		&contentJSON, &styleJSON, &rec.FolderID, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Kind = qrcode.Kind(kind)

	// The record is returned with a decode error so lookups can still use its columns.
	if err := storage.DecodeColumns(&rec, contentJSON, styleJSON); err != nil {
		return &rec, err
	}
	return &rec, nil
}
