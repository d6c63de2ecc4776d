// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// StoreDriver selects the persistence adapter behind the catalog.
type StoreDriver string

const (
	StoreDriverFile     StoreDriver = "file"
	StoreDriverSQLite   StoreDriver = "sqlite"
	StoreDriverPostgres StoreDriver = "postgres"
	StoreDriverMemory   StoreDriver = "memory"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// Env is the application environment (e.g. "development", "production"). Development selects console logs.
	Env string `mapstructure:"APP_ENV"`
	// LogLevel is the zap level name (debug, info, warn, error).
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// StoreDriver is one of file, sqlite, postgres, memory.
	StoreDriver StoreDriver `mapstructure:"STORE_DRIVER"`
	// CatalogFile is the JSON document path used by the file driver.
	CatalogFile string `mapstructure:"CATALOG_FILE"`
	// CatalogKey is the slot name the catalog is stored under by the SQL drivers.
	CatalogKey string `mapstructure:"CATALOG_KEY"`
	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `mapstructure:"SQLITE_PATH"`
	// DatabaseURL is the Postgres DSN; required when StoreDriver is postgres.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// AutoMigrate applies the embedded Postgres migrations before opening the postgres store.
	AutoMigrate bool `mapstructure:"STORE_AUTO_MIGRATE"`

	// OTLPEndpoint is the OpenTelemetry collector (host:port or URL). Empty disables export.
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// OTLPInsecure forces plaintext to the collector even for https endpoints.
	OTLPInsecure bool `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	// ServiceName is the OTel service.name.
	ServiceName string `mapstructure:"OTEL_SERVICE_NAME"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored. Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", string(StoreDriverFile))
	v.SetDefault("CATALOG_FILE", "library.json")
	v.SetDefault("CATALOG_KEY", "library")
	v.SetDefault("SQLITE_PATH", "library.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("STORE_AUTO_MIGRATE", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("OTEL_SERVICE_NAME", "library")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes the driver name and checks the settings that driver needs.
func (c *Config) Validate() error {
	c.StoreDriver = StoreDriver(strings.ToLower(strings.TrimSpace(string(c.StoreDriver))))
	switch c.StoreDriver {
	case StoreDriverFile:
		if strings.TrimSpace(c.CatalogFile) == "" {
			return errors.New("config: CATALOG_FILE must be set when STORE_DRIVER=file")
		}
	case StoreDriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return errors.New("config: SQLITE_PATH must be set when STORE_DRIVER=sqlite")
		}
	case StoreDriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("config: DATABASE_URL must be set when STORE_DRIVER=postgres")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q (want file, sqlite, postgres or memory)", c.StoreDriver)
	}
	if (c.StoreDriver == StoreDriverSQLite || c.StoreDriver == StoreDriverPostgres) && strings.TrimSpace(c.CatalogKey) == "" {
		return errors.New("config: CATALOG_KEY must not be empty")
	}
	return nil
}
