// Package api wires the HTTP surface of the service.
//
//	GET    /r/{code}                          public redirect
//	GET    /api/v1/health                     public
//	POST   /api/v1/content/encode             public
//	POST   /api/v1/content/render             public
//	GET    /api/v1/qr-codes                   owner
//	POST   /api/v1/qr-codes                   owner
//	GET    /api/v1/qr-codes/{id}              owner
//	PATCH  /api/v1/qr-codes/{id}/destination  owner
//	PATCH  /api/v1/qr-codes/{id}/folder       owner
//	DELETE /api/v1/qr-codes/{id}              owner
//	GET    /api/v1/qr-codes/{id}/image        owner
//	GET    /api/v1/folders                    owner
//	POST   /api/v1/folders                    owner
//	GET    /api/v1/folders/{id}               owner
//	PATCH  /api/v1/folders/{id}               owner
//	DELETE /api/v1/folders/{id}               owner
//	GET    /metrics                           prometheus
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	"qrforge/internal/app/server/api/http/content"
	"qrforge/internal/app/server/api/http/folder"
	"qrforge/internal/app/server/api/http/health"
	"qrforge/internal/app/server/api/http/middleware"
	"qrforge/internal/app/server/api/http/middleware/logger"
	"qrforge/internal/app/server/api/http/middleware/owner"
	qrcodeAPI "qrforge/internal/app/server/api/http/qrcode"
	redirectAPI "qrforge/internal/app/server/api/http/redirect"
	folderDomain "qrforge/internal/domain/folder"
	"qrforge/internal/domain/profile"
	"qrforge/internal/domain/qrcode"
	"qrforge/internal/domain/redirect"
	"qrforge/internal/domain/render"
	"qrforge/internal/infrastructure/metrics"
)

// Repositories is what a storage backend provides to the handlers.
type Repositories struct {
	QRCodes  qrcode.Repository
	Folders  folderDomain.Repository
	Profiles profile.Repository
	DB       health.Pinger
}

type Handlers struct {
	Health   *health.Handler
	Redirect *redirectAPI.Handler
	Content  *content.Handler
	QRCode   *qrcodeAPI.Handler
	Folder   *folder.Handler
}

// Deps are the long-lived collaborators owned by the server.
type Deps struct {
	Repos    Repositories
	Recorder redirect.ScanRecorder
	Metrics  *metrics.Metrics
	BaseURL  string
}

// New creates the router with every operation registered through huma.
func New(deps Deps, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.Recoverer)

	config := huma.DefaultConfig("QRForge API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"owner": {Type: "apiKey", In: "header", Name: owner.Header},
	}

	API := humachi.New(mux, config)

	h := handlers(API, deps, log)
	h.Health.SetupRoutes(API)
	h.Redirect.SetupRoutes(API)
	h.Content.SetupRoutes(API)
	h.QRCode.SetupRoutes(API)
	h.Folder.SetupRoutes(API)

	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics.Handler())
	}

	return mux
}

func handlers(API huma.API, deps Deps, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	ownerMW := owner.New(API, log)
	middlewares := middleware.NewContainer(loggerMW.Middleware())
	renderer := render.New()

	var observer redirect.Observer
	if deps.Metrics != nil {
		observer = deps.Metrics
	}

	healthHandler := health.NewHandler(deps.Repos.DB, log, middlewares.GetAllAndClear())

	resolver := redirect.NewResolver(deps.Repos.QRCodes, deps.Recorder, observer, deps.BaseURL, log)
	redirectHandler := redirectAPI.NewHandler(resolver, log, middlewares.GetAllAndClear())

	contentHandler := content.NewHandler(renderer, log, middlewares.GetAllAndClear())

	folderService := folderDomain.NewService(deps.Repos.Folders, deps.Repos.Profiles, log)
	qrService := qrcode.NewService(deps.Repos.QRCodes, folderService, deps.Repos.Profiles, renderer, deps.BaseURL, log)
	middlewares.Add(ownerMW.Middleware())
	qrHandler := qrcodeAPI.NewHandler(qrService, log, middlewares.GetAllAndClear())

	middlewares.Add(ownerMW.Middleware())
	folderHandler := folder.NewHandler(folderService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Redirect: redirectHandler,
		Content:  contentHandler,
		QRCode:   qrHandler,
		Folder:   folderHandler,
	}
}
