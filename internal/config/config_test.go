package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://localhost/qrforge")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Scan.Timeout)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Empty(t, cfg.DB.Migrations)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URI", "file:qr.db")
	t.Setenv("BASE_URL", "https://qr.example/")
	t.Setenv("SCAN_TIMEOUT", "750ms")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "https://qr.example", cfg.Server.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Scan.Timeout)
}

func TestLoad_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qrforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database_uri: postgres://file/db\nrun_address: \":9000\"\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("address", ":8080", "")
	require.NoError(t, flags.Parse([]string{"--address", ":7000"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/db", cfg.DB.DatabaseURI)
	assert.Equal(t, ":7000", cfg.Server.RunAddress)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing database uri", env: map[string]string{}},
		{name: "unknown driver", env: map[string]string{"DATABASE_URI": "x", "DB_DRIVER": "mysql"}},
		{name: "unknown env", env: map[string]string{"DATABASE_URI": "x", "APP_ENV": "staging"}},
		{name: "bad base url", env: map[string]string{"DATABASE_URI": "x", "BASE_URL": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URI", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("", nil)
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnchangedFlagsKeepDefaults(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://localhost/qrforge")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db-driver", "", "")
	flags.String("base-url", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
}
