package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the database and source drivers addressed by URL.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"qrforge/internal/config"
	"qrforge/migrations"
)

// embeddedScheme addresses a directory of migrations.FS instead of the file system.
const embeddedScheme = "embed://"

// Migrator is the subset of *migrate.Migrate used here.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine builds a Migrator, so tests need neither files nor a database.
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

// DefaultEngine opens the source by URL. embed:// URLs are served from the
// schema compiled into the binary.
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	src, err := openSource(sourceURL)
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("source", src, databaseURL)
}

func openSource(sourceURL string) (source.Driver, error) {
	if dir, ok := strings.CutPrefix(sourceURL, embeddedScheme); ok {
		src, err := iofs.New(migrations.FS, dir)
		if err != nil {
			return nil, fmt.Errorf("open embedded migrations: %w", err)
		}
		return src, nil
	}
	src, err := source.Open(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("open migrations %s: %w", sourceURL, err)
	}
	return src, nil
}

// SQLiteEngine runs migrations over an already open SQLite handle, which is
// the only way to reach an in-memory database. The handle stays open after Up.
func SQLiteEngine(db *sql.DB) MigrationEngine {
	return func(sourceURL, _ string) (Migrator, error) {
		src, err := openSource(sourceURL)
		if err != nil {
			return nil, err
		}
		driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
		if err != nil {
			return nil, fmt.Errorf("sqlite migrate driver: %w", err)
		}
		m, err := migrate.NewWithInstance("source", src, "sqlite3", driver)
		if err != nil {
			return nil, err
		}
		return borrowed{m}, nil
	}
}

// borrowed keeps Close from closing a database the caller still owns.
type borrowed struct {
	*migrate.Migrate
}

func (borrowed) Close() (error, error) {
	return nil, nil
}

// SourceURL is where the migrations for the configured driver live.
func (mg *Migration) SourceURL() string {
	if mg.cfg.DB.Migrations != "" {
		return "file://" + mg.cfg.DB.Migrations
	}
	return embeddedScheme + mg.cfg.DB.Driver
}

// DatabaseURL is the configured DSN in the form golang-migrate expects.
func (mg *Migration) DatabaseURL() string {
	uri := mg.cfg.DB.DatabaseURI
	if mg.cfg.DB.Driver == config.DriverSQLite && !strings.HasPrefix(uri, "sqlite3://") {
		return "sqlite3://" + strings.TrimPrefix(uri, "file:")
	}
	return uri
}

func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.SourceURL(), mg.DatabaseURL())
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w; migration up error", err)
	}
	return nil
}
