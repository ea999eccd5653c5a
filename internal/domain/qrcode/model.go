package qrcode

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"qrforge/internal/domain/content"
	"qrforge/internal/domain/render"
)

// Kind tells whether the symbol encodes the content itself or a short link.
type Kind string

const (
	KindStatic  Kind = "static"
	KindDynamic Kind = "dynamic"
)

func (Kind) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: huma.TypeString,
		Enum: []any{string(KindStatic), string(KindDynamic)},
	}
}

func (k Kind) Valid() bool {
	return k == KindStatic || k == KindDynamic
}

// Record is a stored QR code. ShortCode is set iff the code is dynamic.
type Record struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Kind           Kind
	ShortCode      *string
	DestinationURL *string
	Content        content.Descriptor
	Style          render.Style
	FolderID       *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (r *Record) IsDynamic() bool {
	return r.Kind == KindDynamic
}

// ListFilter narrows List. A nil FolderID lists every code of the owner.
type ListFilter struct {
	FolderID *uuid.UUID
}

type CreateParams struct {
	OwnerID        uuid.UUID
	Name           string
	Kind           Kind
	Content        content.Descriptor
	DestinationURL string
	Style          *render.Style
	FolderID       *uuid.UUID
}

const MaxNameLength = 100
