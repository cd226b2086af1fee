package service

import (
	"context"
	"database/sql"

	"github.com/fake-spotify/catalog-api/internal/domain"
	"github.com/fake-spotify/catalog-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockSongStore mocks the store.SongStore interface
type MockSongStore struct {
	mock.Mock
}

func (m *MockSongStore) List(
	ctx context.Context,
	filter store.SongFilter,
	page domain.PageRequest,
) ([]*domain.Song, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Song), args.Int(1), args.Error(2)
}

func (m *MockSongStore) GetByID(ctx context.Context, id int64) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongStore) GetWithRelations(ctx context.Context, id int64) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongStore) LoadRelations(ctx context.Context, songs []*domain.Song) error {
	args := m.Called(ctx, songs)
	return args.Error(0)
}

func (m *MockSongStore) Create(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongStore) Update(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongStore) SyncGenres(ctx context.Context, songID int64, genreIDs []int64) error {
	args := m.Called(ctx, songID, genreIDs)
	return args.Error(0)
}

func (m *MockSongStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongStore) WithTxSongStore(tx *sql.Tx) store.SongStore {
	return m
}

// MockCountryStore mocks the store.CountryStore interface
type MockCountryStore struct {
	mock.Mock
}

func (m *MockCountryStore) List(ctx context.Context, page domain.PageRequest) ([]*domain.Country, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Country), args.Int(1), args.Error(2)
}

func (m *MockCountryStore) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryStore) Create(ctx context.Context, country *domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryStore) WithTxCountryStore(tx *sql.Tx) store.CountryStore {
	return m
}

// MockGenreStore mocks the store.GenreStore interface
type MockGenreStore struct {
	mock.Mock
}

func (m *MockGenreStore) List(ctx context.Context, page domain.PageRequest) ([]*domain.Genre, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Genre), args.Int(1), args.Error(2)
}

func (m *MockGenreStore) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreStore) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockGenreStore) Create(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreStore) WithTxGenreStore(tx *sql.Tx) store.GenreStore {
	return m
}

// inlineTransactor runs the function without a database. It counts calls so
// tests can assert that writes were grouped into one transaction.
type inlineTransactor struct {
	calls int
}

func (t *inlineTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	t.calls++
	return fn(ctx, nil)
}
