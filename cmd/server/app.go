package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fake-spotify/catalog-api/internal/config"
	"github.com/fake-spotify/catalog-api/internal/platform/postgres"
	"github.com/fake-spotify/catalog-api/internal/service"
	"github.com/fake-spotify/catalog-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	songStore    store.SongStore
	countryStore store.CountryStore
	genreStore   store.GenreStore

	songService    service.SongService
	catalogService service.CatalogService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if db == nil {
		return nil, errors.New("database cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.songStore = postgres.NewPostgresSongStore(db, logger)
	app.countryStore = postgres.NewPostgresCountryStore(db, logger)
	app.genreStore = postgres.NewPostgresGenreStore(db, logger)

	var err error
	app.songService, err = service.NewSongService(
		app.songStore,
		app.countryStore,
		app.genreStore,
		store.NewSQLTransactor(db),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create song service: %w", err)
	}

	app.catalogService, err = service.NewCatalogService(app.countryStore, app.genreStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down and releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
