package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"qrforge/internal/config"
	"qrforge/internal/infrastructure/migration"
)

// Storage is the single-node backend. All access goes through one connection:
// SQLite serializes writers anyway, and an in-memory database exists per connection.
type Storage struct {
	db *sql.DB
}

func New(cfg *config.Config) (*Storage, error) {
	db, err := sql.Open("sqlite3", dsn(cfg.DB.DatabaseURI))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	mg := migration.NewMigration(cfg, migration.SQLiteEngine(db))
	if err := mg.Up(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// dsn turns foreign keys on, which SQLite leaves off by default.
func dsn(uri string) string {
	uri = strings.TrimPrefix(uri, "sqlite3://")
	if strings.Contains(uri, "_foreign_keys") || strings.Contains(uri, "_fk=") {
		return uri
	}
	if strings.Contains(uri, "?") {
		return uri + "&_foreign_keys=on"
	}
	return uri + "?_foreign_keys=on"
}

func isConstraint(err error, code sqlite3.ErrNoExtended) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == code
}
