// Package main implements the entry point for the catalog API server, which
// serves songs, genres and countries over a JSON REST API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/fake-spotify/catalog-api/internal/platform/logger"
	"github.com/fake-spotify/catalog-api/internal/platform/postgres"
	"github.com/fake-spotify/catalog-api/internal/redact"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// options are the command line flags of the server binary.
type options struct {
	// migrate runs a migration command instead of serving.
	migrate string
	// seed inserts the default countries and genres instead of serving.
	seed bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("server exited with error", slog.String("error", redact.Error(err)))
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and the database, and then
// either executes a one-off database command or serves until SIGINT/SIGTERM.
func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.migrate != "" || opts.seed {
		defer closeDatabase(db, log)
		return runDatabaseCommand(ctx, db, opts, log)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		closeDatabase(db, log)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// parseFlags parses the command line. Unknown migration commands are rejected
// before any connection is made.
func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a migration command and exit ("+strings.Join(postgres.MigrationCommands, ", ")+")")
	fs.BoolVar(&opts.seed, "seed", false, "insert the default countries and genres and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.migrate != "" && !slices.Contains(postgres.MigrationCommands, opts.migrate) {
		return options{}, fmt.Errorf("unknown migration command %q", opts.migrate)
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return opts, nil
}
