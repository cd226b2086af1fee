package store

import (
	"context"
	"database/sql"

	"github.com/fake-spotify/catalog-api/internal/domain"
)

// CountryStore defines the interface for country data persistence.
type CountryStore interface {
	// List returns the countries on the requested page ordered by ID,
	// together with the total number of countries.
	List(ctx context.Context, page domain.PageRequest) ([]*domain.Country, int, error)

	// GetByID retrieves a country by its ID.
	// Returns ErrCountryNotFound if the country does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Country, error)

	// Create inserts a country unless one with the same name exists.
	Create(ctx context.Context, country *domain.Country) error

	// WithTxCountryStore returns a CountryStore that runs its statements on tx.
	WithTxCountryStore(tx *sql.Tx) CountryStore
}
