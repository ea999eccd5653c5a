// Package owner identifies the caller of owner-scoped operations.
//
// Authentication happens upstream; the gateway forwards the authenticated
// user as a UUID in the X-User-ID header.
package owner

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const Header = "X-User-ID"

type contextKey string

const ownerIDKey contextKey = "ownerID"

type Owner struct {
	api huma.API
	log *slog.Logger
}

func New(api huma.API, log *slog.Logger) *Owner {
	return &Owner{
		api: api,
		log: log.With(slog.String("component", "owner_middleware")),
	}
}

func (o *Owner) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		raw := ctx.Header(Header)
		if raw == "" {
			o.reject(ctx, "missing "+Header+" header")
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			o.log.Debug("malformed owner id", slog.String("value", raw))
			o.reject(ctx, "malformed "+Header+" header")
			return
		}

		next(huma.WithContext(ctx, WithOwnerID(ctx.Context(), id)))
	}
}

func (o *Owner) reject(ctx huma.Context, detail string) {
	if err := huma.WriteErr(o.api, ctx, http.StatusUnauthorized, detail); err != nil {
		o.log.Error("write unauthorized response", slog.Any("error", err))
	}
}

func WithOwnerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey, id)
}

// FromContext returns the owner set by the middleware.
func FromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerIDKey).(uuid.UUID)
	return id, ok
}

// Require is FromContext for handlers: a missing owner is a 401.
func Require(ctx context.Context) (uuid.UUID, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return uuid.Nil, huma.Error401Unauthorized("Unauthorized")
	}
	return id, nil
}
