package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/fake-spotify/catalog-api/internal/domain"
	"github.com/fake-spotify/catalog-api/internal/platform/logger"
	"github.com/fake-spotify/catalog-api/internal/store"
)

// CreateSongInput holds the fields of a new song.
type CreateSongInput struct {
	Title     string
	Duration  int
	CountryID int64
	// GenreIDs replaces the song's genres when non-nil.
	GenreIDs *[]int64
}

// UpdateSongInput holds the fields of a partial song update.
// A nil field is left unchanged.
type UpdateSongInput struct {
	Title     *string
	Duration  *int
	CountryID *int64
	// GenreIDs replaces the song's genres when non-nil; an empty slice
	// detaches every genre.
	GenreIDs *[]int64
}

// SongService provides song-related operations
type SongService interface {
	// ListSongs returns one page of songs matching filter, each with its
	// genres and country loaded.
	ListSongs(ctx context.Context, filter store.SongFilter, page domain.PageRequest) (*domain.Page[*domain.Song], error)

	// GetSong retrieves a song with its genres and country.
	GetSong(ctx context.Context, id int64) (*domain.Song, error)

	// CreateSong creates a song, associates its country and genres, and
	// returns it with relations loaded.
	CreateSong(ctx context.Context, input CreateSongInput) (*domain.Song, error)

	// UpdateSong applies the supplied fields to a song and returns it with
	// relations loaded. Returns ErrNothingUpdated if the store changed no row.
	UpdateSong(ctx context.Context, id int64, input UpdateSongInput) (*domain.Song, error)

	// DeleteSong removes a song and its genre associations.
	DeleteSong(ctx context.Context, id int64) error
}

const songServiceComponent = "song_service"

// songServiceImpl implements the SongService interface
type songServiceImpl struct {
	songStore    store.SongStore
	countryStore store.CountryStore
	genreStore   store.GenreStore
	transactor   store.Transactor
	logger       *slog.Logger
}

// NewSongService creates a new SongService
// It returns an error if any of the required dependencies are nil.
func NewSongService(
	songStore store.SongStore,
	countryStore store.CountryStore,
	genreStore store.GenreStore,
	transactor store.Transactor,
	logger *slog.Logger,
) (SongService, error) {
	if songStore == nil {
		return nil, domain.NewValidationError("songStore", "cannot be nil", domain.ErrValidation)
	}
	if countryStore == nil {
		return nil, domain.NewValidationError("countryStore", "cannot be nil", domain.ErrValidation)
	}
	if genreStore == nil {
		return nil, domain.NewValidationError("genreStore", "cannot be nil", domain.ErrValidation)
	}
	if transactor == nil {
		return nil, domain.NewValidationError("transactor", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &songServiceImpl{
		songStore:    songStore,
		countryStore: countryStore,
		genreStore:   genreStore,
		transactor:   transactor,
		logger:       logger.With(slog.String("component", songServiceComponent)),
	}, nil
}

// ListSongs implements SongService.ListSongs
func (s *songServiceImpl) ListSongs(
	ctx context.Context,
	filter store.SongFilter,
	page domain.PageRequest,
) (*domain.Page[*domain.Song], error) {
	log := logger.ForComponent(ctx, s.logger, songServiceComponent)

	songs, total, err := s.songStore.List(ctx, filter, page)
	if err != nil {
		log.Error("failed to list songs", slog.String("error", err.Error()))
		return nil, NewSongServiceError("list_songs", "failed to list songs", err)
	}

	if err := s.songStore.LoadRelations(ctx, songs); err != nil {
		log.Error("failed to load song relations", slog.String("error", err.Error()))
		return nil, NewSongServiceError("list_songs", "failed to load relations", err)
	}

	return domain.NewPage(songs, total, page), nil
}

// GetSong implements SongService.GetSong
func (s *songServiceImpl) GetSong(ctx context.Context, id int64) (*domain.Song, error) {
	log := logger.ForComponent(ctx, s.logger, songServiceComponent)

	song, err := s.songStore.GetWithRelations(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("song not found", slog.Int64("song_id", id))
			return nil, NewSongServiceError("get_song", "song not found", store.ErrSongNotFound)
		}
		log.Error("failed to get song",
			slog.Int64("song_id", id),
			slog.String("error", err.Error()))
		return nil, NewSongServiceError("get_song", "failed to get song", err)
	}

	return song, nil
}

// CreateSong implements SongService.CreateSong
// The insert, the country check and the genre sync run in one transaction.
func (s *songServiceImpl) CreateSong(ctx context.Context, input CreateSongInput) (*domain.Song, error) {
	log := logger.ForComponent(ctx, s.logger, songServiceComponent)

	song, err := domain.NewSong(input.Title, input.Duration, input.CountryID)
	if err != nil {
		return nil, NewSongServiceError("create_song", "invalid song", err)
	}

	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txSongs := s.songStore.WithTxSongStore(tx)

		if err := s.checkCountry(ctx, tx, input.CountryID); err != nil {
			return err
		}
		if input.GenreIDs != nil {
			if err := s.checkGenres(ctx, tx, *input.GenreIDs); err != nil {
				return err
			}
		}

		if err := txSongs.Create(ctx, song); err != nil {
			return err
		}

		if input.GenreIDs != nil {
			if err := txSongs.SyncGenres(ctx, song.ID, *input.GenreIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Warn("failed to create song",
			slog.String("title", input.Title),
			slog.String("error", err.Error()))
		return nil, NewSongServiceError("create_song", "failed to create song", err)
	}

	log.Info("song created", slog.Int64("song_id", song.ID))
	return s.reload(ctx, "create_song", song.ID)
}

// UpdateSong implements SongService.UpdateSong
func (s *songServiceImpl) UpdateSong(ctx context.Context, id int64, input UpdateSongInput) (*domain.Song, error) {
	log := logger.ForComponent(ctx, s.logger, songServiceComponent).With(slog.Int64("song_id", id))

	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txSongs := s.songStore.WithTxSongStore(tx)

		song, err := txSongs.GetByID(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				return store.ErrSongNotFound
			}
			return err
		}

		if input.Title != nil {
			song.Title = *input.Title
		}
		if input.Duration != nil {
			song.Duration = *input.Duration
		}
		if input.CountryID != nil {
			song.CountryID = *input.CountryID
		}
		if err := song.Validate(); err != nil {
			return err
		}

		if input.CountryID != nil {
			if err := s.checkCountry(ctx, tx, *input.CountryID); err != nil {
				return err
			}
		}
		if input.GenreIDs != nil {
			if err := s.checkGenres(ctx, tx, *input.GenreIDs); err != nil {
				return err
			}
		}

		if err := txSongs.Update(ctx, song); err != nil {
			if errors.Is(err, store.ErrUpdateFailed) {
				return ErrNothingUpdated
			}
			return err
		}

		if input.GenreIDs != nil {
			if err := txSongs.SyncGenres(ctx, song.ID, *input.GenreIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Warn("failed to update song", slog.String("error", err.Error()))
		return nil, NewSongServiceError("update_song", "failed to update song", err)
	}

	log.Info("song updated")
	return s.reload(ctx, "update_song", id)
}

// DeleteSong implements SongService.DeleteSong
func (s *songServiceImpl) DeleteSong(ctx context.Context, id int64) error {
	log := logger.ForComponent(ctx, s.logger, songServiceComponent)

	if err := s.songStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("song to delete not found", slog.Int64("song_id", id))
			return NewSongServiceError("delete_song", "song not found", store.ErrSongNotFound)
		}
		log.Error("failed to delete song",
			slog.Int64("song_id", id),
			slog.String("error", err.Error()))
		return NewSongServiceError("delete_song", "failed to delete song", err)
	}

	log.Info("song deleted", slog.Int64("song_id", id))
	return nil
}

// checkCountry fails with store.ErrCountryNotFound if countryID does not exist.
func (s *songServiceImpl) checkCountry(ctx context.Context, tx *sql.Tx, countryID int64) error {
	if _, err := s.countryStore.WithTxCountryStore(tx).GetByID(ctx, countryID); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrCountryNotFound
		}
		return err
	}
	return nil
}

// checkGenres fails with store.ErrGenreNotFound if any of ids does not exist.
func (s *songServiceImpl) checkGenres(ctx context.Context, tx *sql.Tx, ids []int64) error {
	missing, err := s.genreStore.WithTxGenreStore(tx).MissingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		logger.ForComponent(ctx, s.logger, songServiceComponent).Debug("unknown genres referenced",
			slog.Any("genre_ids", missing))
		return store.ErrGenreNotFound
	}
	return nil
}

// reload fetches a song with its relations after a committed write.
func (s *songServiceImpl) reload(ctx context.Context, operation string, id int64) (*domain.Song, error) {
	song, err := s.songStore.GetWithRelations(ctx, id)
	if err != nil {
		return nil, NewSongServiceError(operation, "failed to load song", err)
	}
	return song, nil
}
