package qrcode

import (
	"time"

	"github.com/google/uuid"

	"qrforge/internal/domain/content"
	"qrforge/internal/domain/qrcode"
	"qrforge/internal/domain/render"
)

type idInput struct {
	ID string `path:"id" format:"uuid" doc:"QR code ID"`
}

type listInput struct {
	FolderID string `query:"folderId" format:"uuid" doc:"Only codes in this folder"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name           string            `json:"name" minLength:"1" maxLength:"100" example:"Lunch menu"`
	Type           qrcode.Kind       `json:"type" doc:"static encodes the content, dynamic encodes a short link"`
	Content        *content.Envelope `json:"content,omitempty" doc:"Required for static codes"`
	DestinationURL string            `json:"destinationUrl,omitempty" doc:"Where a dynamic code redirects; defaults to url content"`
	Style          *render.Style     `json:"style,omitempty"`
	FolderID       *string           `json:"folderId,omitempty" format:"uuid"`
}

type updateDestinationInput struct {
	ID   string `path:"id" format:"uuid" doc:"QR code ID"`
	Body struct {
		DestinationURL string `json:"destinationUrl" minLength:"1" example:"https://example.com/spring-menu"`
	}
}

type assignFolderInput struct {
	ID   string `path:"id" format:"uuid" doc:"QR code ID"`
	Body struct {
		FolderID *string `json:"folderId,omitempty" format:"uuid" nullable:"true" doc:"Omit or send null to remove the code from its folder"`
	}
}

type imageInput struct {
	ID     string        `path:"id" format:"uuid" doc:"QR code ID"`
	Format render.Format `query:"format" enum:"png,svg" default:"png"`
}

type imageOutput struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}

type output struct {
	Body response
}

type listOutput struct {
	Body []response
}

type response struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Type           qrcode.Kind       `json:"type"`
	ShortCode      *string           `json:"shortCode,omitempty"`
	ShortURL       string            `json:"shortUrl,omitempty"`
	DestinationURL *string           `json:"destinationUrl,omitempty"`
	Content        *content.Envelope `json:"content,omitempty"`
	Style          render.Style      `json:"style"`
	FolderID       *uuid.UUID        `json:"folderId"`
	Payload        string            `json:"payload" doc:"Text encoded in the symbol"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
