package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/qrcode"
	"qrforge/internal/infrastructure/storage"
)

const qrCodeColumns = `id, user_id, name, type, short_code, destination_url, content, style,
		       folder_id, created_at, updated_at`

type QRCodeRepository struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

func NewQRCodeRepository(db *sql.DB, log *slog.Logger) *QRCodeRepository {
	return &QRCodeRepository{
		db:  db,
		log: log.With("component", "qrcode_repository"),
		now: time.Now,
	}
}

func (r *QRCodeRepository) FindByShortCode(ctx context.Context, code string) (*qrcode.Record, error) {
	const query = `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE short_code = ?`

	rec, err := scanQRCode(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
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
	const query = `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE id = ? AND user_id = ?`

	rec, err := scanQRCode(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, qrcode.ErrNotFound
		}
		r.log.Error("failed to get qr code", "qr_code_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get qr code: %w", err)
	}
	return rec, nil
}

func (r *QRCodeRepository) List(ctx context.Context, ownerID uuid.UUID, filter qrcode.ListFilter) ([]qrcode.Record, error) {
	query := `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE user_id = ?`
	args := []any{ownerID}
	if filter.FolderID != nil {
		query += ` AND folder_id = ?`
		args = append(args, *filter.FolderID)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	contentJSON, err := storage.MarshalContent(rec.Content)
	if err != nil {
		return err
	}
	styleJSON, err := storage.MarshalStyle(rec.Style)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.OwnerID, rec.Name, string(rec.Kind), nullString(rec.ShortCode), nullString(rec.DestinationURL),
		nullBytes(contentJSON), string(styleJSON), nullUUID(rec.FolderID), rec.CreatedAt.UTC(), rec.UpdatedAt.UTC(),
	)
	if err != nil {
		switch {
		case isConstraint(err, sqlite3.ErrConstraintUnique):
			return qrcode.ErrShortCodeTaken
		case isConstraint(err, sqlite3.ErrConstraintForeignKey):
			return qrcode.ErrFolderNotFound
		}
		r.log.Error("failed to create qr code", "owner_id", rec.OwnerID, "error", err)
		return fmt.Errorf("create qr code: %w", err)
	}
	return nil
}

func (r *QRCodeRepository) UpdateDestination(ctx context.Context, ownerID, id uuid.UUID, destination string) error {
	const query = `
		UPDATE qr_codes SET destination_url = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND type = 'dynamic'`

	res, err := r.db.ExecContext(ctx, query, destination, r.now().UTC(), id, ownerID)
	if err != nil {
		return fmt.Errorf("update destination: %w", err)
	}
	return affected(res, qrcode.ErrNotFound)
}

func (r *QRCodeRepository) UpdateFolder(ctx context.Context, ownerID, id uuid.UUID, folderID *uuid.UUID) error {
	const query = `UPDATE qr_codes SET folder_id = ?, updated_at = ? WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, nullUUID(folderID), r.now().UTC(), id, ownerID)
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintForeignKey) {
			return qrcode.ErrFolderNotFound
		}
		return fmt.Errorf("update folder: %w", err)
	}
	return affected(res, qrcode.ErrNotFound)
}

func (r *QRCodeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM qr_codes WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete qr code", "qr_code_id", id, "error", err)
		return fmt.Errorf("delete qr code: %w", err)
	}
	return affected(res, qrcode.ErrNotFound)
}

func (r *QRCodeRepository) CountDynamic(ctx context.Context, ownerID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM qr_codes WHERE user_id = ? AND type = 'dynamic'`

	var n int
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count dynamic qr codes: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQRCode(row rowScanner) (*qrcode.Record, error) {
	var (
		rec         qrcode.Record
		kind        string
		shortCode   sql.NullString
		destination sql.NullString
		contentJSON sql.NullString
		styleJSON   string
		folderID    uuid.NullUUID
	)
	err := row.Scan(
		&rec.ID, &rec.OwnerID, &rec.Name, &kind, &shortCode, &destination,
		&contentJSON, &styleJSON, &folderID, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Kind = qrcode.Kind(kind)
	if shortCode.Valid {
		rec.ShortCode = &shortCode.String
	}
	if destination.Valid {
		rec.DestinationURL = &destination.String
	}
	if folderID.Valid {
		rec.FolderID = &folderID.UUID
	}

	// The record is returned with a decode error so lookups can still use its columns.
	if err := storage.DecodeColumns(&rec, []byte(contentJSON.String), []byte(styleJSON)); err != nil {
		return &rec, err
	}
	return &rec, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullBytes(b []byte) sql.NullString {
	if b == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func affected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
