package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/folder"
)

type FolderRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewFolderRepository(db *sql.DB, log *slog.Logger) *FolderRepository {
	return &FolderRepository{
		db:  db,
		log: log.With("component", "folder_repository"),
	}
}

func (r *FolderRepository) List(ctx context.Context, ownerID uuid.UUID) ([]folder.Folder, error) {
	const query = `
		SELECT id, user_id, name, color, created_at, updated_at
		FROM folders WHERE user_id = ? ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list folders", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := make([]folder.Folder, 0)
	for rows.Next() {
		var f folder.Folder
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.Color, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}
	return folders, nil
}

func (r *FolderRepository) Get(ctx context.Context, ownerID, id uuid.UUID) (*folder.Folder, error) {
	const query = `
		SELECT id, user_id, name, color, created_at, updated_at
		FROM folders WHERE id = ? AND user_id = ?`

	var f folder.Folder
	err := r.db.QueryRowContext(ctx, query, id, ownerID).
		Scan(&f.ID, &f.OwnerID, &f.Name, &f.Color, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, folder.ErrNotFound
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}
	return &f, nil
}

func (r *FolderRepository) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM folders WHERE user_id = ?`

	var n int
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count folders: %w", err)
	}
	return n, nil
}

func (r *FolderRepository) Create(ctx context.Context, f *folder.Folder) error {
	const query = `
		INSERT INTO folders (id, user_id, name, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, f.ID, f.OwnerID, f.Name, f.Color, f.CreatedAt.UTC(), f.UpdatedAt.UTC())
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintUnique) {
			return folder.ErrDuplicateName
		}
		r.log.Error("failed to create folder", "owner_id", f.OwnerID, "error", err)
		return fmt.Errorf("create folder: %w", err)
	}
	return nil
}

func (r *FolderRepository) Update(ctx context.Context, f *folder.Folder) error {
	const query = `UPDATE folders SET name = ?, color = ?, updated_at = ? WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, f.Name, f.Color, f.UpdatedAt.UTC(), f.ID, f.OwnerID)
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintUnique) {
			return folder.ErrDuplicateName
		}
		return fmt.Errorf("update folder: %w", err)
	}
	return affected(res, folder.ErrNotFound)
}

// Delete relies on ON DELETE SET NULL to detach the folder's codes.
func (r *FolderRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM folders WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete folder", "folder_id", id, "error", err)
		return fmt.Errorf("delete folder: %w", err)
	}
	return affected(res, folder.ErrNotFound)
}
