package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/fake-spotify/catalog-api/internal/config"
	"github.com/fake-spotify/catalog-api/internal/platform/postgres"
)

// pingTimeout bounds the connectivity check at startup.
const pingTimeout = 5 * time.Second

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppDatabase establishes a connection to the database and configures connection pools.
// Returns the database connection if successful, or an error if the connection fails.
func setupAppDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	configurePool(db, cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.Database.MaxIdleConns))
	return db, nil
}

func configurePool(db *sql.DB, cfg config.DatabaseConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
}

// runDatabaseCommand executes the -migrate or -seed flag. A migration runs
// before seeding when both are given.
func runDatabaseCommand(ctx context.Context, db *sql.DB, opts options, logger *slog.Logger) error {
	if opts.migrate != "" {
		if err := postgres.Migrate(ctx, db, opts.migrate, logger); err != nil {
			return fmt.Errorf("migration %q failed: %w", opts.migrate, err)
		}
	}

	if opts.seed {
		if err := postgres.Seed(ctx, db, logger); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
	}

	return nil
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("error closing database connection", slog.String("error", err.Error()))
	}
}
