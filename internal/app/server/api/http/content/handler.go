package content

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"qrforge/internal/app/server/api/http/apierr"
	"qrforge/internal/domain/content"
	"qrforge/internal/domain/render"
)

type Handler struct {
	renderer   *render.Renderer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(renderer *render.Renderer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		renderer:   renderer,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.encodeOp(), h.encode)
	huma.Register(api, h.renderOp(), h.render)
}

func (h *Handler) encode(_ context.Context, input *encodeInput) (*encodeOutput, error) {
	payload, err := h.prepare(input.Body.Content)
	if err != nil {
		return nil, err
	}
	return &encodeOutput{Body: encodeResponse{Payload: payload}}, nil
}

func (h *Handler) render(_ context.Context, input *renderInput) (*renderOutput, error) {
	payload, err := h.prepare(input.Body.Content)
	if err != nil {
		return nil, err
	}

	style := render.DefaultStyle()
	if input.Body.Style != nil {
		style = *input.Body.Style
	}
	if err := h.renderer.ValidateStyle(style); err != nil {
		return nil, apierr.From(h.log, err)
	}

	format := input.Body.Format
	if format == "" {
		format = render.FormatPNG
	}

	img, err := h.renderer.Render(payload, style, format)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	data := string(img.Data)
	if format == render.FormatPNG {
		data = img.DataURL()
	}

	return &renderOutput{Body: renderResponse{
		Payload:     payload,
		Format:      format,
		ContentType: img.ContentType,
		Data:        data,
	}}, nil
}

func (h *Handler) prepare(env content.Envelope) (string, error) {
	if env.Descriptor == nil {
		return "", huma.Error422UnprocessableEntity("content is required")
	}
	payload, err := content.Prepare(env.Descriptor)
	if err != nil {
		return "", apierr.From(h.log, err)
	}
	return payload, nil
}
