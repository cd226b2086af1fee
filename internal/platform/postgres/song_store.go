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

// PostgresSongStore implements the store.SongStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSongStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSongStore creates a new PostgreSQL implementation of the SongStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSongStore(db store.DBTX, logger *slog.Logger) *PostgresSongStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSongStore{
		db:     db,
		logger: logger.With(slog.String("component", "song_store")),
	}
}

// Ensure PostgresSongStore implements store.SongStore interface
var _ store.SongStore = (*PostgresSongStore)(nil)

// WithTxSongStore implements store.SongStore.WithTxSongStore
func (s *PostgresSongStore) WithTxSongStore(tx *sql.Tx) store.SongStore {
	return &PostgresSongStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.SongStore.List
func (s *PostgresSongStore) List(
	ctx context.Context,
	filter store.SongFilter,
	page domain.PageRequest,
) ([]*domain.Song, int, error) {
	q := newSongQuery(filter)

	countQuery, countArgs := q.countSQL()
	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		s.logger.Error("failed to count songs",
			slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	songs := []*domain.Song{}
	if total == 0 || page.Offset() >= total {
		return songs, total, nil
	}

	pageQuery, pageArgs := q.pageSQL(page.Limit(), page.Offset())
	rows, err := s.db.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		s.logger.Error("failed to list songs",
			slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	s.logger.Debug("listed songs",
		slog.Int("count", len(songs)),
		slog.Int("total", total),
		slog.Int("page", page.Normalize().Page),
		slog.Bool("filtered", !filter.IsEmpty()))

	return songs, total, nil
}

// GetByID implements store.SongStore.GetByID
func (s *PostgresSongStore) GetByID(ctx context.Context, id int64) (*domain.Song, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+songColumns+" FROM songs s WHERE s.id = $1", id)

	song, err := scanSong(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSongNotFound
		}
		s.logger.Error("failed to get song",
			slog.Int64("song_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return song, nil
}

// GetWithRelations implements store.SongStore.GetWithRelations
func (s *PostgresSongStore) GetWithRelations(ctx context.Context, id int64) (*domain.Song, error) {
	song, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.LoadRelations(ctx, []*domain.Song{song}); err != nil {
		return nil, err
	}

	return song, nil
}

// LoadRelations implements store.SongStore.LoadRelations
// Genres are loaded through the genre_song pivot and countries by ID, one
// query each regardless of the number of songs.
func (s *PostgresSongStore) LoadRelations(ctx context.Context, songs []*domain.Song) error {
	if len(songs) == 0 {
		return nil
	}

	songIDs := make([]int64, 0, len(songs))
	countryIDs := make([]int64, 0, len(songs))
	seenCountry := make(map[int64]struct{}, len(songs))
	byID := make(map[int64][]*domain.Song, len(songs))
	for _, song := range songs {
		song.Genres = []*domain.Genre{}
		if _, ok := byID[song.ID]; !ok {
			songIDs = append(songIDs, song.ID)
		}
		byID[song.ID] = append(byID[song.ID], song)
		if _, ok := seenCountry[song.CountryID]; !ok {
			seenCountry[song.CountryID] = struct{}{}
			countryIDs = append(countryIDs, song.CountryID)
		}
	}

	if err := s.loadGenres(ctx, songIDs, byID); err != nil {
		return err
	}

	return s.loadCountries(ctx, countryIDs, songs)
}

func (s *PostgresSongStore) loadGenres(
	ctx context.Context,
	songIDs []int64,
	byID map[int64][]*domain.Song,
) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT gs.song_id, g.id, g.name, g.created_at, g.updated_at
		FROM genres g
		JOIN genre_song gs ON gs.genre_id = g.id
		WHERE gs.song_id = ANY($1)
		ORDER BY gs.song_id, g.id`, songIDs)
	if err != nil {
		s.logger.Error("failed to load song genres",
			slog.Int("song_count", len(songIDs)),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var songID int64
		var genre domain.Genre
		if err := rows.Scan(&songID, &genre.ID, &genre.Name, &genre.CreatedAt, &genre.UpdatedAt); err != nil {
			return MapError(err)
		}
		for _, song := range byID[songID] {
			g := genre
			song.Genres = append(song.Genres, &g)
		}
	}

	return MapError(rows.Err())
}

func (s *PostgresSongStore) loadCountries(
	ctx context.Context,
	countryIDs []int64,
	songs []*domain.Song,
) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at, updated_at FROM countries WHERE id = ANY($1)", countryIDs)
	if err != nil {
		s.logger.Error("failed to load song countries",
			slog.Int("country_count", len(countryIDs)),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	countries := make(map[int64]*domain.Country, len(countryIDs))
	for rows.Next() {
		var country domain.Country
		if err := rows.Scan(&country.ID, &country.Name, &country.CreatedAt, &country.UpdatedAt); err != nil {
			return MapError(err)
		}
		countries[country.ID] = &country
	}
	if err := rows.Err(); err != nil {
		return MapError(err)
	}

	for _, song := range songs {
		song.Country = countries[song.CountryID]
	}

	return nil
}

// Create implements store.SongStore.Create
func (s *PostgresSongStore) Create(ctx context.Context, song *domain.Song) error {
	log := s.logger.With(slog.String("title", song.Title))

	if err := song.Validate(); err != nil {
		log.Warn("invalid song data", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	if song.CreatedAt.IsZero() {
		song.CreatedAt = now
	}
	if song.UpdatedAt.IsZero() {
		song.UpdatedAt = now
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO songs (title, duration, country_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		song.Title, song.Duration, song.CountryID, song.CreatedAt, song.UpdatedAt,
	).Scan(&song.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("song references a missing country",
				slog.Int64("country_id", song.CountryID))
			return store.ErrCountryNotFound
		}
		log.Error("failed to insert song", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("song created", slog.Int64("song_id", song.ID))
	return nil
}

// Update implements store.SongStore.Update
func (s *PostgresSongStore) Update(ctx context.Context, song *domain.Song) error {
	log := s.logger.With(slog.Int64("song_id", song.ID))

	if err := song.Validate(); err != nil {
		log.Warn("invalid song data", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	song.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE songs
		SET title = $1, duration = $2, country_id = $3, updated_at = $4
		WHERE id = $5`,
		song.Title, song.Duration, song.CountryID, song.UpdatedAt, song.ID,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("song references a missing country",
				slog.Int64("country_id", song.CountryID))
			return store.ErrCountryNotFound
		}
		log.Error("failed to update song", slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, fmt.Errorf("%w: %w", store.ErrUpdateFailed, store.ErrSongNotFound)); err != nil {
		log.Warn("song update changed no row", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// SyncGenres implements store.SongStore.SyncGenres
func (s *PostgresSongStore) SyncGenres(ctx context.Context, songID int64, genreIDs []int64) error {
	ids := domain.UniqueGenreIDs(genreIDs)
	log := s.logger.With(slog.Int64("song_id", songID), slog.Any("genre_ids", ids))

	if len(ids) == 0 {
		if _, err := s.db.ExecContext(ctx,
			"DELETE FROM genre_song WHERE song_id = $1", songID); err != nil {
			log.Error("failed to detach genres", slog.String("error", err.Error()))
			return store.NewStoreError("song", "sync_genres", "detach all", MapError(err))
		}
		return nil
	}

	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM genre_song WHERE song_id = $1 AND NOT (genre_id = ANY($2))",
		songID, ids); err != nil {
		log.Error("failed to detach stale genres", slog.String("error", err.Error()))
		return store.NewStoreError("song", "sync_genres", "detach stale", MapError(err))
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO genre_song (song_id, genre_id)
		SELECT $1, UNNEST($2::bigint[])
		ON CONFLICT DO NOTHING`,
		songID, ids); err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("genre sync references a missing song or genre")
			return store.ErrGenreNotFound
		}
		log.Error("failed to attach genres", slog.String("error", err.Error()))
		return store.NewStoreError("song", "sync_genres", "attach", MapError(err))
	}

	log.Debug("genres synced")
	return nil
}

// Delete implements store.SongStore.Delete
func (s *PostgresSongStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM songs WHERE id = $1", id)
	if err != nil {
		s.logger.Error("failed to delete song",
			slog.Int64("song_id", id),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrDeleteFailed, MapError(err))
	}

	return CheckRowsAffected(result, store.ErrSongNotFound)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSong(row rowScanner) (*domain.Song, error) {
	var song domain.Song
	if err := row.Scan(
		&song.ID,
		&song.Title,
		&song.Duration,
		&song.CountryID,
		&song.CreatedAt,
		&song.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &song, nil
}
