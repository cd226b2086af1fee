package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fake-spotify/catalog-api/internal/domain"
	"github.com/fake-spotify/catalog-api/internal/store"
	"github.com/google/uuid"
)

// DefaultCountries are the countries inserted by Seed, in ID order on an empty database.
var DefaultCountries = []string{
	"Canada",
	"United States",
	"United Kingdom",
	"Sweden",
	"Japan",
	"Brazil",
}

// DefaultGenres are the genres inserted by Seed, in ID order on an empty database.
var DefaultGenres = []string{
	"Rock",
	"Pop",
	"Jazz",
	"Hip Hop",
	"Electronic",
	"Classical",
	"Country",
}

// Seed inserts DefaultCountries and DefaultGenres in one transaction.
// Rows that already exist by name are kept, so Seed can run repeatedly.
func Seed(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(
		slog.String("component", "seed"),
		slog.String("correlation_id", uuid.New().String()),
	)

	countries := NewPostgresCountryStore(db, log)
	genres := NewPostgresGenreStore(db, log)

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txCountries := countries.WithTxCountryStore(tx)
		for _, name := range DefaultCountries {
			if err := txCountries.Create(ctx, &domain.Country{Name: name}); err != nil {
				return fmt.Errorf("failed to seed country %q: %w", name, err)
			}
		}

		txGenres := genres.WithTxGenreStore(tx)
		for _, name := range DefaultGenres {
			if err := txGenres.Create(ctx, &domain.Genre{Name: name}); err != nil {
				return fmt.Errorf("failed to seed genre %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("seeding failed", slog.String("error", err.Error()))
		return err
	}

	log.Info("seed data inserted",
		slog.Int("countries", len(DefaultCountries)),
		slog.Int("genres", len(DefaultGenres)))
	return nil
}
