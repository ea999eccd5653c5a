package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/folder"
)

type FolderRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewFolderRepository(pool *pgxpool.Pool, log *slog.Logger) *FolderRepository {
	return &FolderRepository{
		pool: pool,
		log:  log.With("component", "folder_repository"),
	}
}

func (r *FolderRepository) List(ctx context.Context, ownerID uuid.UUID) ([]folder.Folder, error) {
	const query = `
		SELECT id, user_id, name, color, created_at, updated_at
		FROM folders WHERE user_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, ownerID)
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
		FROM folders WHERE id = $1 AND user_id = $2`

	var f folder.Folder
	err := r.pool.QueryRow(ctx, query, id, ownerID).
		Scan(&f.ID, &f.OwnerID, &f.Name, &f.Color, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, folder.ErrNotFound
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}
	return &f, nil
}

func (r *FolderRepository) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM folders WHERE user_id = $1`

	var n int
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count folders: %w", err)
	}
	return n, nil
}

func (r *FolderRepository) Create(ctx context.Context, f *folder.Folder) error {
	const query = `
		INSERT INTO folders (id, user_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, f.ID, f.OwnerID, f.Name, f.Color, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		if isViolation(err, codeUniqueViolation) {
			return folder.ErrDuplicateName
		}
		r.log.Error("failed to create folder", "owner_id", f.OwnerID, "error", err)
		return fmt.Errorf("create folder: %w", err)
	}
	return nil
}

func (r *FolderRepository) Update(ctx context.Context, f *folder.Folder) error {
	const query = `
		UPDATE folders SET name = $3, color = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, f.ID, f.OwnerID, f.Name, f.Color, f.UpdatedAt)
	if err != nil {
		if isViolation(err, codeUniqueViolation) {
			return folder.ErrDuplicateName
		}
		return fmt.Errorf("update folder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return folder.ErrNotFound
	}
	return nil
}

// Delete relies on ON DELETE SET NULL to detach the folder's codes.
func (r *FolderRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM folders WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete folder", "folder_id", id, "error", err)
		return fmt.Errorf("delete folder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return folder.ErrNotFound
	}
	return nil
}
