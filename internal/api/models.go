package api

// CreateSongRequest defines the payload for creating a song.
// Fields are pointers so that a missing field is told apart from a zero value.
type CreateSongRequest struct {
	Title     *string  `json:"title"      validate:"required,min=3,max=255"`
	Duration  *int     `json:"duration"   validate:"required,min=0"`
	CountryID *int64   `json:"country_id" validate:"required"`
	GenreIDs  *[]int64 `json:"genre_ids"`
}

// UpdateSongRequest defines the payload for a partial song update.
// Absent fields keep their stored value; genre_ids replaces the genre set.
type UpdateSongRequest struct {
	Title     *string  `json:"title"      validate:"omitnil,min=3,max=255"`
	Duration  *int     `json:"duration"   validate:"omitnil,min=0"`
	CountryID *int64   `json:"country_id"`
	GenreIDs  *[]int64 `json:"genre_ids"`
}

// HomeResponse is the body of GET /.
type HomeResponse struct {
	App    string `json:"app"`
	Author string `json:"author"`
	Email  string `json:"email"`
}

// Response messages of the song write endpoints.
const (
	msgSongCreated    = "Successfully created a song!"
	msgSongUpdated    = "Successfully update the song!"
	msgSongNotUpdated = "Could not update!"
	msgSongDeleted    = "Successfully deleted the song!"
)
