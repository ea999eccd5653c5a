package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"qrforge/internal/app/server/api"
	"qrforge/internal/config"
	"qrforge/internal/domain/scan"
	"qrforge/internal/infrastructure/metrics"
)

const readHeaderTimeout = 10 * time.Second

type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	backend  *Backend
	recorder *scan.Recorder
	http     *http.Server
}

// New opens storage and builds the HTTP server. Close releases the storage.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Server, error) {
	backend, err := OpenStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	recorder := scan.NewRecorder(backend.Scans, log, m, cfg.Scan.Timeout)
	router := api.New(api.Deps{
		Repos:    backend.Repos,
		Recorder: recorder,
		Metrics:  m,
		BaseURL:  cfg.Server.BaseURL,
	}, log)

	return &Server{
		cfg:      cfg,
		log:      log.With("component", "server"),
		backend:  backend,
		recorder: recorder,
		http: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Run serves until ctx is done, then drains requests and pending scan
// recordings within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("server started", "address", ln.Addr().String(), "env", s.cfg.Env, "db", s.cfg.DB.Driver)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := s.recorder.Wait(shutdownCtx); err != nil {
			s.log.Warn("scan recordings still pending", "error", err)
		}
		return nil
	})

	return g.Wait()
}

func (s *Server) Close() error {
	return s.backend.Close()
}
