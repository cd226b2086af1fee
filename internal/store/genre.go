package store

import (
	"context"
	"database/sql"

	"github.com/fake-spotify/catalog-api/internal/domain"
)

// GenreStore defines the interface for genre data persistence.
type GenreStore interface {
	// List returns the genres on the requested page ordered by ID,
	// together with the total number of genres.
	List(ctx context.Context, page domain.PageRequest) ([]*domain.Genre, int, error)

	// GetByID retrieves a genre by its ID.
	// Returns ErrGenreNotFound if the genre does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Genre, error)

	// MissingIDs returns the subset of ids that do not reference an existing genre.
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)

	// Create inserts a genre unless one with the same name exists.
	Create(ctx context.Context, genre *domain.Genre) error

	// WithTxGenreStore returns a GenreStore that runs its statements on tx.
	WithTxGenreStore(tx *sql.Tx) GenreStore
}
