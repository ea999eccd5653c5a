package redirect

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/redirect"
	"qrforge/internal/domain/scan"
)

type Resolver interface {
	Handle(ctx context.Context, code string, md scan.Metadata) redirect.Decision
}

type Handler struct {
	resolver   Resolver
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(resolver Resolver, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		resolver:   resolver,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.redirectOp(), h.redirect)
}

// redirect always answers 302; destinations are not cached so edits apply to the next scan.
func (h *Handler) redirect(ctx context.Context, in *input) (*output, error) {
	d := h.resolver.Handle(ctx, in.Code, scan.Metadata{
		ForwardedFor: in.ForwardedFor,
		RealIP:       in.RealIP,
		UserAgent:    in.UserAgent,
		Referrer:     in.Referer,
	})

	return &output{
		Status:       http.StatusFound,
		Location:     d.Location,
		CacheControl: "no-store",
	}, nil
}
