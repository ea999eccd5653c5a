package qrcode

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// FindByShortCode is the public lookup used by redirects; it is not owner-scoped.
	FindByShortCode(ctx context.Context, code string) (*Record, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*Record, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]Record, error)
	// Create returns ErrShortCodeTaken when the short code collides.
	Create(ctx context.Context, rec *Record) error
	UpdateDestination(ctx context.Context, ownerID, id uuid.UUID, destination string) error
	UpdateFolder(ctx context.Context, ownerID, id uuid.UUID, folderID *uuid.UUID) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	CountDynamic(ctx context.Context, ownerID uuid.UUID) (int, error)
}
