package store

import (
	"context"
	"database/sql"

	"github.com/fake-spotify/catalog-api/internal/domain"
)

// SongFilter holds the optional constraints of a song listing.
// A nil or empty field imposes no constraint; supplied fields are ANDed.
type SongFilter struct {
	// GenreID restricts to songs associated with exactly this genre.
	GenreID *int64
	// CountryID restricts to songs whose country_id equals this value.
	CountryID *int64
	// Search is a case-insensitive substring match on the song title.
	Search *string
	// CountryName is a case-insensitive substring match on the song's country name.
	CountryName *string
}

// IsEmpty reports whether the filter imposes no constraint at all.
func (f SongFilter) IsEmpty() bool {
	return f.GenreID == nil && f.CountryID == nil && f.Search == nil && f.CountryName == nil
}

// SongStore defines the interface for song data persistence.
type SongStore interface {
	// List returns the songs on the requested page that match filter, together
	// with the total number of matching songs. Songs are ordered by ID and
	// returned without relations; use LoadRelations to attach them.
	List(ctx context.Context, filter SongFilter, page domain.PageRequest) ([]*domain.Song, int, error)

	// GetByID retrieves a song by its ID without relations.
	// Returns ErrSongNotFound if the song does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Song, error)

	// GetWithRelations retrieves a song with its genres and country attached.
	// Returns ErrSongNotFound if the song does not exist.
	GetWithRelations(ctx context.Context, id int64) (*domain.Song, error)

	// LoadRelations eager-loads genres and country for every song in songs
	// using one query per relation.
	LoadRelations(ctx context.Context, songs []*domain.Song) error

	// Create inserts a new song and sets its ID and timestamps.
	// Returns ErrInvalidEntity if the song is invalid or its country does not exist.
	Create(ctx context.Context, song *domain.Song) error

	// Update persists title, duration and country of an existing song.
	// Returns ErrUpdateFailed wrapped with ErrSongNotFound when no row changed.
	Update(ctx context.Context, song *domain.Song) error

	// SyncGenres replaces the genre associations of a song so that afterwards
	// they equal exactly genreIDs. An empty slice detaches every genre.
	// This method must run inside a transaction to be atomic.
	SyncGenres(ctx context.Context, songID int64, genreIDs []int64) error

	// Delete removes a song. Genre associations are removed by the
	// ON DELETE CASCADE of the genre_song table.
	// Returns ErrSongNotFound if the song does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTxSongStore returns a SongStore that runs its statements on tx.
	WithTxSongStore(tx *sql.Tx) SongStore
}
