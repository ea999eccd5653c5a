package folder

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Folder, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*Folder, error)
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
	// Create returns ErrDuplicateName when the owner already has a folder with that name.
	Create(ctx context.Context, f *Folder) error
	Update(ctx context.Context, f *Folder) error
	// Delete detaches every QR code from the folder; the codes themselves stay.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
