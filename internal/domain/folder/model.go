package folder

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultColor  = "#14b8a6"
	MaxNameLength = 50
)

type Folder struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateParams carries optional changes; nil fields are left untouched.
type UpdateParams struct {
	Name  *string
	Color *string
}
