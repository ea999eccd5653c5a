package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"qrforge/internal/app/server/api"
	"qrforge/internal/config"
	"qrforge/internal/domain/scan"
	"qrforge/internal/domain/tier"
	"qrforge/internal/infrastructure/storage/postgres"
	"qrforge/internal/infrastructure/storage/sqlite"
)

// TierSetter changes the plan of an owner. Only administrative tooling uses it.
type TierSetter interface {
	SetTier(ctx context.Context, ownerID uuid.UUID, t tier.Tier) error
}

// Backend is an opened storage driver with its repositories.
type Backend struct {
	Repos api.Repositories
	Scans scan.Repository
	Tiers TierSetter
	Close func() error
}

// OpenStorage connects to the configured database and applies migrations.
func OpenStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		s, err := sqlite.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		db := s.DB()
		profiles := sqlite.NewProfileRepository(db, log)
		return &Backend{
			Repos: api.Repositories{
				QRCodes:  sqlite.NewQRCodeRepository(db, log),
				Folders:  sqlite.NewFolderRepository(db, log),
				Profiles: profiles,
				DB:       s,
			},
			Scans: sqlite.NewScanRepository(db),
			Tiers: profiles,
			Close: s.Close,
		}, nil
	case config.DriverPostgres:
		s, err := postgres.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		pool := s.Pool()
		profiles := postgres.NewProfileRepository(pool, log)
		return &Backend{
			Repos: api.Repositories{
				QRCodes:  postgres.NewQRCodeRepository(pool, log),
				Folders:  postgres.NewFolderRepository(pool, log),
				Profiles: profiles,
				DB:       s,
			},
			Scans: postgres.NewScanRepository(pool),
			Tiers: profiles,
			Close: s.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}
}
