package content

import (
	"qrforge/internal/domain/content"
	"qrforge/internal/domain/render"
)

type encodeInput struct {
	Body encodeRequest
}

type encodeRequest struct {
	Content content.Envelope `json:"content" doc:"What the symbol should contain"`
}

type encodeOutput struct {
	Body encodeResponse
}

type encodeResponse struct {
	Payload string `json:"payload" example:"WIFI:T:WPA;S:cafe;P:secret;H:false;;" doc:"Text a scanner reads back"`
}

type renderInput struct {
	Body renderRequest
}

type renderRequest struct {
	Content content.Envelope `json:"content"`
	Style   *render.Style    `json:"style,omitempty" doc:"Defaults to black on white, level M, margin 2, 256px"`
	Format  render.Format    `json:"format,omitempty" enum:"png,svg" default:"png"`
}

type renderOutput struct {
	Body renderResponse
}

type renderResponse struct {
	Payload     string        `json:"payload"`
	Format      render.Format `json:"format"`
	ContentType string        `json:"contentType" example:"image/png"`
	Data        string        `json:"data" doc:"PNG data URL or SVG document"`
}
