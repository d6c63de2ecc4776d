// Package app wires configuration, logging, telemetry and the selected catalog store
// into a ready Handler. Commands open one App per invocation and close it on exit.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"library-management/backend/internal/catalog/handler"
	"library-management/backend/internal/catalog/repository"
	"library-management/backend/internal/catalog/service"
	"library-management/backend/internal/catalog/store"
	"library-management/backend/internal/config"
	"library-management/backend/internal/db"
	"library-management/backend/internal/db/migrate"
	loanservice "library-management/backend/internal/loan/service"
	"library-management/backend/internal/logger"
	"library-management/backend/internal/telemetry"
	telemetryotel "library-management/backend/internal/telemetry/otel"
)

const meterName = "library-management/backend"

// App is one open session over the configured catalog.
type App struct {
	Handler *handler.Handler
	Logger  *zap.Logger
	Store   *store.Store

	closers []func(context.Context) error
}

// Open builds an App from cfg. On error everything opened so far is closed.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}
	if err := a.open(ctx, cfg); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	return a, nil
}

func (a *App) open(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.Logger = log
	a.closers = append(a.closers, func(context.Context) error {
		_ = log.Sync()
		return nil
	})

	providers, err := telemetryotel.NewProviders(ctx, telemetryotel.Options{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	providers.SetGlobal()
	a.closers = append(a.closers, providers.Shutdown)

	rec, err := telemetry.NewRecorder(
		telemetryotel.NewEventEmitter(providers.LoggerProvider),
		providers.MeterProvider.Meter(meterName),
		log,
	)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	repo, err := a.openRepository(cfg)
	if err != nil {
		return err
	}
	st, err := store.Open(ctx, repo)
	if err != nil {
		return err
	}
	a.Store = st

	a.Handler = handler.New(
		service.NewCatalogService(st, nil, rec),
		loanservice.NewLoanService(st, nil, rec),
		handler.Options{
			Recorder: rec,
			Logger:   log,
			Tracer:   providers.TracerProvider.Tracer(handler.TracerName),
		},
	)
	log.Debug("catalog opened", zap.String("driver", string(cfg.StoreDriver)))
	return nil
}

func (a *App) openRepository(cfg *config.Config) (repository.Repository, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return repository.NewMemoryRepository(), nil
	case config.StoreDriverFile:
		return repository.NewFileRepository(cfg.CatalogFile), nil
	case config.StoreDriverSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		a.closeDB(conn)
		return repository.NewSQLRepository(conn, repository.SQLite, cfg.CatalogKey), nil
	case config.StoreDriverPostgres:
		if cfg.AutoMigrate {
			if err := migrate.Run(cfg.DatabaseURL, migrate.Up); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		a.closeDB(conn)
		return repository.NewSQLRepository(conn, repository.Postgres, cfg.CatalogKey), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (a *App) closeDB(conn *sql.DB) {
	a.closers = append(a.closers, func(context.Context) error { return conn.Close() })
}

// Close releases resources in reverse order of acquisition and flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	var errs error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = errors.Join(errs, a.closers[i](ctx))
	}
	a.closers = nil
	return errs
}
