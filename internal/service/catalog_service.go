package service

import (
	"context"
	"log/slog"

	"github.com/fake-spotify/catalog-api/internal/domain"
	"github.com/fake-spotify/catalog-api/internal/platform/logger"
	"github.com/fake-spotify/catalog-api/internal/store"
)

// CatalogService provides read access to countries and genres
type CatalogService interface {
	ListCountries(ctx context.Context, page domain.PageRequest) (*domain.Page[*domain.Country], error)
	GetCountry(ctx context.Context, id int64) (*domain.Country, error)
	ListGenres(ctx context.Context, page domain.PageRequest) (*domain.Page[*domain.Genre], error)
	GetGenre(ctx context.Context, id int64) (*domain.Genre, error)
}

const catalogServiceComponent = "catalog_service"

type catalogServiceImpl struct {
	countryStore store.CountryStore
	genreStore   store.GenreStore
	logger       *slog.Logger
}

// NewCatalogService creates a new CatalogService
// It returns an error if any of the required dependencies are nil.
func NewCatalogService(
	countryStore store.CountryStore,
	genreStore store.GenreStore,
	logger *slog.Logger,
) (CatalogService, error) {
	if countryStore == nil {
		return nil, domain.NewValidationError("countryStore", "cannot be nil", domain.ErrValidation)
	}
	if genreStore == nil {
		return nil, domain.NewValidationError("genreStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		countryStore: countryStore,
		genreStore:   genreStore,
		logger:       logger.With(slog.String("component", catalogServiceComponent)),
	}, nil
}

func (s *catalogServiceImpl) ListCountries(
	ctx context.Context,
	page domain.PageRequest,
) (*domain.Page[*domain.Country], error) {
	countries, total, err := s.countryStore.List(ctx, page)
	if err != nil {
		logger.ForComponent(ctx, s.logger, catalogServiceComponent).Error("failed to list countries",
			slog.String("error", err.Error()))
		return nil, NewCatalogServiceError("list_countries", "failed to list countries", err)
	}
	return domain.NewPage(countries, total, page), nil
}

func (s *catalogServiceImpl) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	country, err := s.countryStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrCountryNotFound
		}
		logger.ForComponent(ctx, s.logger, catalogServiceComponent).Error("failed to get country",
			slog.Int64("country_id", id),
			slog.String("error", err.Error()))
		return nil, NewCatalogServiceError("get_country", "failed to get country", err)
	}
	return country, nil
}

func (s *catalogServiceImpl) ListGenres(
	ctx context.Context,
	page domain.PageRequest,
) (*domain.Page[*domain.Genre], error) {
	genres, total, err := s.genreStore.List(ctx, page)
	if err != nil {
		logger.ForComponent(ctx, s.logger, catalogServiceComponent).Error("failed to list genres",
			slog.String("error", err.Error()))
		return nil, NewCatalogServiceError("list_genres", "failed to list genres", err)
	}
	return domain.NewPage(genres, total, page), nil
}

func (s *catalogServiceImpl) GetGenre(ctx context.Context, id int64) (*domain.Genre, error) {
	genre, err := s.genreStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrGenreNotFound
		}
		logger.ForComponent(ctx, s.logger, catalogServiceComponent).Error("failed to get genre",
			slog.Int64("genre_id", id),
			slog.String("error", err.Error()))
		return nil, NewCatalogServiceError("get_genre", "failed to get genre", err)
	}
	return genre, nil
}
