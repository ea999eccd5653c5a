package qrcode

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"qrforge/internal/app/server/api/http/apierr"
	"qrforge/internal/app/server/api/http/middleware/owner"
	"qrforge/internal/domain/content"
	"qrforge/internal/domain/qrcode"
	"qrforge/internal/domain/render"
)

type Handler struct {
	service    qrcode.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service qrcode.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateDestinationOp(), h.updateDestination)
	huma.Register(api, h.assignFolderOp(), h.assignFolder)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.imageOp(), h.image)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}

	var filter qrcode.ListFilter
	if filter.FolderID, err = apierr.ParseOptionalID("query.folderId", &input.FolderID); err != nil {
		return nil, err
	}

	recs, err := h.service.List(ctx, ownerID, filter)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	out := &listOutput{Body: make([]response, 0, len(recs))}
	for i := range recs {
		out.Body = append(out.Body, h.toResponse(&recs[i]))
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}

	params := qrcode.CreateParams{
		OwnerID:        ownerID,
		Name:           input.Body.Name,
		Kind:           input.Body.Type,
		DestinationURL: input.Body.DestinationURL,
		Style:          input.Body.Style,
	}
	if input.Body.Content != nil {
		params.Content = input.Body.Content.Descriptor
	}
	if params.FolderID, err = apierr.ParseOptionalID("body.folderId", input.Body.FolderID); err != nil {
		return nil, err
	}

	rec, err := h.service.Create(ctx, params)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: h.toResponse(rec)}, nil
}

func (h *Handler) get(ctx context.Context, input *idInput) (*output, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apierr.ParseID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	rec, err := h.service.Get(ctx, ownerID, id)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: h.toResponse(rec)}, nil
}

func (h *Handler) updateDestination(ctx context.Context, input *updateDestinationInput) (*output, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apierr.ParseID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	rec, err := h.service.UpdateDestination(ctx, ownerID, id, input.Body.DestinationURL)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: h.toResponse(rec)}, nil
}

func (h *Handler) assignFolder(ctx context.Context, input *assignFolderInput) (*output, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apierr.ParseID("path.id", input.ID)
	if err != nil {
		return nil, err
	}
	folderID, err := apierr.ParseOptionalID("body.folderId", input.Body.FolderID)
	if err != nil {
		return nil, err
	}

	rec, err := h.service.AssignFolder(ctx, ownerID, id, folderID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: h.toResponse(rec)}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apierr.ParseID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, ownerID, id); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return nil, nil
}

func (h *Handler) image(ctx context.Context, input *imageInput) (*imageOutput, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apierr.ParseID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	format := input.Format
	if format == "" {
		format = render.FormatPNG
	}

	img, err := h.service.Image(ctx, ownerID, id, format)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &imageOutput{
		ContentType:  img.ContentType,
		CacheControl: "private, max-age=60",
		Body:         img.Data,
	}, nil
}

func (h *Handler) toResponse(rec *qrcode.Record) response {
	resp := response{
		ID:             rec.ID,
		Name:           rec.Name,
		Type:           rec.Kind,
		ShortCode:      rec.ShortCode,
		DestinationURL: rec.DestinationURL,
		Content:        content.Wrap(rec.Content),
		Style:          rec.Style,
		FolderID:       rec.FolderID,
		Payload:        h.service.Payload(rec),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
	if rec.ShortCode != nil {
		resp.ShortURL = h.service.ShortURL(*rec.ShortCode)
	}
	return resp
}
