package domain

import (
	"time"
	"unicode/utf8"
)

// MinTitleLength is the minimum number of characters in a song title.
const MinTitleLength = 3

// Song is a catalog entry. It belongs to one Country and has many Genres.
//
// Genres and Country are only populated when the song was loaded with its
// relations; a nil Country means the relation was not loaded.
type Song struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Duration  int       `json:"duration"`
	CountryID int64     `json:"country_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Genres  []*Genre `json:"genres"`
	Country *Country `json:"country"`
}

// NewSong creates a new Song with creation/update timestamps set.
// Returns an error if validation fails.
func NewSong(title string, duration int, countryID int64) (*Song, error) {
	now := time.Now().UTC()
	song := &Song{
		Title:     title,
		Duration:  duration,
		CountryID: countryID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := song.Validate(); err != nil {
		return nil, err
	}

	return song, nil
}

// Validate checks if the Song has valid data.
// Returns a *ValidationError for the first field that fails.
func (s *Song) Validate() error {
	if utf8.RuneCountInString(s.Title) < MinTitleLength {
		return NewValidationError("title", "must be at least 3 characters", ErrTitleTooShort)
	}

	if s.Duration < 0 {
		return NewValidationError("duration", "cannot be negative", ErrInvalidDuration)
	}

	if s.CountryID <= 0 {
		return NewValidationError("country_id", "must be a positive ID", ErrInvalidID)
	}

	return nil
}

// GenreIDs returns the IDs of the loaded genres.
func (s *Song) GenreIDs() []int64 {
	ids := make([]int64, 0, len(s.Genres))
	for _, g := range s.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}
