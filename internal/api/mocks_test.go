package api

import (
	"context"

	"github.com/fake-spotify/catalog-api/internal/domain"
	"github.com/fake-spotify/catalog-api/internal/service"
	"github.com/fake-spotify/catalog-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockSongService mocks the service.SongService interface
type MockSongService struct {
	mock.Mock
}

var _ service.SongService = (*MockSongService)(nil)

func (m *MockSongService) ListSongs(
	ctx context.Context,
	filter store.SongFilter,
	page domain.PageRequest,
) (*domain.Page[*domain.Song], error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[*domain.Song]), args.Error(1)
}

func (m *MockSongService) GetSong(ctx context.Context, id int64) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongService) CreateSong(ctx context.Context, input service.CreateSongInput) (*domain.Song, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongService) UpdateSong(
	ctx context.Context,
	id int64,
	input service.UpdateSongInput,
) (*domain.Song, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongService) DeleteSong(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCatalogService mocks the service.CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

var _ service.CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) ListCountries(
	ctx context.Context,
	page domain.PageRequest,
) (*domain.Page[*domain.Country], error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[*domain.Country]), args.Error(1)
}

func (m *MockCatalogService) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCatalogService) ListGenres(
	ctx context.Context,
	page domain.PageRequest,
) (*domain.Page[*domain.Genre], error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[*domain.Genre]), args.Error(1)
}

func (m *MockCatalogService) GetGenre(ctx context.Context, id int64) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}
