package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fake-spotify/catalog-api/internal/domain"
	"github.com/fake-spotify/catalog-api/internal/store"
)

// PostgresCountryStore implements the store.CountryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCountryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCountryStore creates a new PostgreSQL implementation of the CountryStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCountryStore(db store.DBTX, logger *slog.Logger) *PostgresCountryStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCountryStore{
		db:     db,
		logger: logger.With(slog.String("component", "country_store")),
	}
}

// Ensure PostgresCountryStore implements store.CountryStore interface
var _ store.CountryStore = (*PostgresCountryStore)(nil)

// WithTxCountryStore implements store.CountryStore.WithTxCountryStore
func (s *PostgresCountryStore) WithTxCountryStore(tx *sql.Tx) store.CountryStore {
	return &PostgresCountryStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.CountryStore.List
func (s *PostgresCountryStore) List(ctx context.Context, page domain.PageRequest) ([]*domain.Country, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM countries").Scan(&total); err != nil {
		s.logger.Error("failed to count countries", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	countries := []*domain.Country{}
	if total == 0 || page.Offset() >= total {
		return countries, total, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM countries
		ORDER BY id
		LIMIT $1 OFFSET $2`, page.Limit(), page.Offset())
	if err != nil {
		s.logger.Error("failed to list countries", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, MapError(err)
		}
		countries = append(countries, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return countries, total, nil
}

// GetByID implements store.CountryStore.GetByID
func (s *PostgresCountryStore) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	var c domain.Country
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM countries WHERE id = $1", id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCountryNotFound
		}
		s.logger.Error("failed to get country",
			slog.Int64("country_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &c, nil
}

// Create implements store.CountryStore.Create
// An existing country with the same name is reused and its ID returned.
func (s *PostgresCountryStore) Create(ctx context.Context, country *domain.Country) error {
	if err := country.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO countries (name, created_at, updated_at)
		VALUES ($1, $2, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at, updated_at`,
		country.Name, now,
	).Scan(&country.ID, &country.CreatedAt, &country.UpdatedAt)
	if err != nil {
		s.logger.Error("failed to create country",
			slog.String("name", country.Name),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return nil
}
