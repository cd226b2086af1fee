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

// PostgresGenreStore implements the store.GenreStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGenreStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGenreStore creates a new PostgreSQL implementation of the GenreStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresGenreStore(db store.DBTX, logger *slog.Logger) *PostgresGenreStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGenreStore{
		db:     db,
		logger: logger.With(slog.String("component", "genre_store")),
	}
}

// Ensure PostgresGenreStore implements store.GenreStore interface
var _ store.GenreStore = (*PostgresGenreStore)(nil)

// WithTxGenreStore implements store.GenreStore.WithTxGenreStore
func (s *PostgresGenreStore) WithTxGenreStore(tx *sql.Tx) store.GenreStore {
	return &PostgresGenreStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.GenreStore.List
func (s *PostgresGenreStore) List(ctx context.Context, page domain.PageRequest) ([]*domain.Genre, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM genres").Scan(&total); err != nil {
		s.logger.Error("failed to count genres", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	genres := []*domain.Genre{}
	if total == 0 || page.Offset() >= total {
		return genres, total, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM genres
		ORDER BY id
		LIMIT $1 OFFSET $2`, page.Limit(), page.Offset())
	if err != nil {
		s.logger.Error("failed to list genres", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, 0, MapError(err)
		}
		genres = append(genres, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return genres, total, nil
}

// GetByID implements store.GenreStore.GetByID
func (s *PostgresGenreStore) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	var g domain.Genre
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM genres WHERE id = $1", id,
	).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrGenreNotFound
		}
		s.logger.Error("failed to get genre",
			slog.Int64("genre_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &g, nil
}

// MissingIDs implements store.GenreStore.MissingIDs
// The result keeps the order of ids and contains each missing ID once.
func (s *PostgresGenreStore) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	ids = domain.UniqueGenreIDs(ids)
	if len(ids) == 0 {
		return []int64{}, nil
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id FROM genres WHERE id = ANY($1)", ids)
	if err != nil {
		s.logger.Error("failed to look up genres",
			slog.Any("genre_ids", ids),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	found := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, MapError(err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	missing := []int64{}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing, nil
}

// Create implements store.GenreStore.Create
// An existing genre with the same name is reused and its ID returned.
func (s *PostgresGenreStore) Create(ctx context.Context, genre *domain.Genre) error {
	if err := genre.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO genres (name, created_at, updated_at)
		VALUES ($1, $2, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at, updated_at`,
		genre.Name, now,
	).Scan(&genre.ID, &genre.CreatedAt, &genre.UpdatedAt)
	if err != nil {
		s.logger.Error("failed to create genre",
			slog.String("name", genre.Name),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return nil
}
