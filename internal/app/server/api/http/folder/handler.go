package folder

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"qrforge/internal/app/server/api/http/apierr"
	"qrforge/internal/app/server/api/http/middleware/owner"
	"qrforge/internal/domain/folder"
)

type Handler struct {
	service    folder.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service folder.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
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
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}

	folders, err := h.service.List(ctx, ownerID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	out := &listOutput{Body: make([]response, 0, len(folders))}
	for i := range folders {
		out.Body = append(out.Body, toResponse(&folders[i]))
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}

	f, err := h.service.Create(ctx, ownerID, input.Body.Name, input.Body.Color)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: toResponse(f)}, nil
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

	f, err := h.service.Get(ctx, ownerID, id)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: toResponse(f)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	ownerID, err := owner.Require(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apierr.ParseID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	f, err := h.service.Update(ctx, ownerID, id, folder.UpdateParams{
		Name:  input.Body.Name,
		Color: input.Body.Color,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: toResponse(f)}, nil
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
