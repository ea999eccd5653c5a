package folder

import (
	"time"

	"github.com/google/uuid"

	"qrforge/internal/domain/folder"
)

type idInput struct {
	ID string `path:"id" format:"uuid" doc:"Folder ID"`
}

type createInput struct {
	Body struct {
		Name  string `json:"name" minLength:"1" example:"Menus"`
		Color string `json:"color,omitempty" example:"#14b8a6" doc:"Hex color, defaults to #14b8a6"`
	}
}

type updateInput struct {
	ID   string `path:"id" format:"uuid" doc:"Folder ID"`
	Body struct {
		Name  *string `json:"name,omitempty"`
		Color *string `json:"color,omitempty"`
	}
}

type output struct {
	Body response
}

type listOutput struct {
	Body []response
}

type response struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(f *folder.Folder) response {
	return response{
		ID:        f.ID,
		Name:      f.Name,
		Color:     f.Color,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
