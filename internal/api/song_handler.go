package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fake-spotify/catalog-api/internal/api/shared"
	"github.com/fake-spotify/catalog-api/internal/platform/logger"
	"github.com/fake-spotify/catalog-api/internal/service"
)

const songHandlerComponent = "song_handler"

// SongHandler handles song-related HTTP requests
type SongHandler struct {
	songService service.SongService
	pages       PageSettings
	logger      *slog.Logger
}

// NewSongHandler creates a new SongHandler. A non-positive pages.PerPage
// selects domain.DefaultPerPage.
func NewSongHandler(songService service.SongService, pages PageSettings, logger *slog.Logger) *SongHandler {
	if songService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("songService cannot be nil for SongHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SongHandler{
		songService: songService,
		pages:       pages.normalize(),
		logger:      logger.With(slog.String("component", songHandlerComponent)),
	}
}

// ListSongs handles GET /api/songs requests.
// Supported query parameters: genre_id, country_id, search, country_name, page.
func (h *SongHandler) ListSongs(w http.ResponseWriter, r *http.Request) {
	errs := shared.FieldErrors{}
	filter := parseSongFilter(r, errs)
	page := parsePageRequest(r, h.pages, errs)
	if len(errs) > 0 {
		shared.RespondWithValidationErrors(w, r, errs)
		return
	}

	result, err := h.songService.ListSongs(r.Context(), filter, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list songs")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetSong handles GET /api/songs/{id} requests.
func (h *SongHandler) GetSong(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	song, err := h.songService.GetSong(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get song")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, song)
}

// CreateSong handles POST /api/songs requests.
func (h *SongHandler) CreateSong(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, songHandlerComponent)

	var req CreateSongRequest
	if !h.decode(w, r, &req) {
		return
	}

	input := service.CreateSongInput{
		Title:     *req.Title,
		Duration:  *req.Duration,
		CountryID: *req.CountryID,
		GenreIDs:  req.GenreIDs,
	}

	song, err := h.songService.CreateSong(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create song", shared.WithElevatedLogLevel())
		return
	}

	log.Debug("song created", slog.Int64("song_id", song.ID))
	shared.RespondWithMessage(w, r, msgSongCreated, song)
}

// UpdateSong handles PATCH /api/songs/{id} requests.
func (h *SongHandler) UpdateSong(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateSongRequest
	if !h.decode(w, r, &req) {
		return
	}

	song, err := h.songService.UpdateSong(r.Context(), id, service.UpdateSongInput{
		Title:     req.Title,
		Duration:  req.Duration,
		CountryID: req.CountryID,
		GenreIDs:  req.GenreIDs,
	})
	if errors.Is(err, service.ErrNothingUpdated) {
		shared.RespondWithMessage(w, r, msgSongNotUpdated, nil)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update song", shared.WithElevatedLogLevel())
		return
	}

	shared.RespondWithMessage(w, r, msgSongUpdated, song)
}

// DeleteSong handles DELETE /api/songs/{id} requests.
func (h *SongHandler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.songService.DeleteSong(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete song", shared.WithElevatedLogLevel())
		return
	}

	shared.RespondWithMessage(w, r, msgSongDeleted, nil)
}

// decode reads and validates a JSON request body into req. It writes the
// error response and returns false when the body is unusable.
func (h *SongHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		if fields, ok := shared.AsFieldErrors(err); ok {
			shared.RespondWithValidationErrors(w, r, fields)
			return false
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
