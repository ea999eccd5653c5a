package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env    string `validate:"oneof=local dev prod"`
	DB     db
	Server server
	Logger logger
	Scan   scan
}

type db struct {
	Driver      string `validate:"oneof=postgres sqlite"`
	DatabaseURI string `validate:"required"`
	// Migrations is a directory of SQL files; empty uses the schema built into the binary.
	Migrations  string
}

type server struct {
	RunAddress      string        `validate:"required"`
	BaseURL         string        `validate:"required,url"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

type logger struct {
	LogLevel string
}

type scan struct {
	Timeout time.Duration `validate:"gt=0"`
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"env":          "app_env",
	"address":      "run_address",
	"base-url":     "base_url",
	"db-driver":    "db_driver",
	"database-uri": "database_uri",
	"migrations":   "migrations_path",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvProd)
	v.SetDefault("run_address", ":8080")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("scan_timeout", "5s")
	v.SetDefault("shutdown_timeout", "10s")
}

// Load reads configuration from, in increasing priority: defaults, the optional
// config file, .env and the environment, then any flags that were set.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			// Unchanged flags would shadow the defaults above.
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: db{
			Driver:      strings.ToLower(v.GetString("db_driver")),
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: server{
			RunAddress:      v.GetString("run_address"),
			BaseURL:         strings.TrimRight(v.GetString("base_url"), "/"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Logger: logger{LogLevel: v.GetString("log_level")},
		Scan:   scan{Timeout: v.GetDuration("scan_timeout")},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func MustLoad(configFile string, flags *pflag.FlagSet) *Config {
	cfg, err := Load(configFile, flags)
	if err != nil {
		log.Fatalln(err)
	}
	return cfg
}
