package api

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fake-spotify/catalog-api/internal/api/shared"
	"github.com/fake-spotify/catalog-api/internal/domain"
	"github.com/fake-spotify/catalog-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts a positive integer ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID if valid
//   - (0, error): A *domain.ValidationError if the parameter is missing or not a positive integer
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// queryInt64 parses an optional integer query parameter. An absent or empty
// parameter yields nil. A malformed value is recorded in errs.
func queryInt64(query url.Values, name string, errs shared.FieldErrors) *int64 {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs.Add(name, "The "+shared.Attribute(name)+" must be an integer.")
		return nil
	}
	return &v
}

// queryString returns an optional query parameter. A blank value yields nil;
// any other value is returned unchanged, surrounding spaces included. A value
// that is not valid UTF-8 is recorded in errs.
func queryString(query url.Values, name string, errs shared.FieldErrors) *string {
	raw := query.Get(name)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if !utf8.ValidString(raw) {
		errs.Add(name, "The "+shared.Attribute(name)+" must be a valid UTF-8 string.")
		return nil
	}
	return &raw
}

// PageSettings are the page sizes of list endpoints.
type PageSettings struct {
	// PerPage is used when the request has no per_page parameter.
	PerPage int
	// MaxPerPage caps the per_page parameter. Zero disables the cap.
	MaxPerPage int
}

func (p PageSettings) normalize() PageSettings {
	if p.PerPage <= 0 {
		p.PerPage = domain.DefaultPerPage
	}
	return p
}

// parsePageRequest reads the page and per_page query parameters. Page links
// are built from the request URL so that they keep the other query parameters.
func parsePageRequest(r *http.Request, settings PageSettings, errs shared.FieldErrors) domain.PageRequest {
	query := r.URL.Query()
	settings = settings.normalize()

	page := 1
	if p := queryInt64(query, "page", errs); p != nil && *p > 0 {
		page = clampInt(*p)
	}

	perPage := settings.PerPage
	if p := queryInt64(query, "per_page", errs); p != nil && *p > 0 {
		perPage = clampInt(*p)
		if settings.MaxPerPage > 0 && perPage > settings.MaxPerPage {
			perPage = settings.MaxPerPage
		}
	}

	return domain.PageRequest{
		Page:    page,
		PerPage: perPage,
		Path:    requestBaseURL(r),
		Query:   query,
	}.Normalize()
}

// clampInt converts a positive int64 to int, saturating on 32-bit platforms.
func clampInt(v int64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

// parseSongFilter reads the song listing filters from the query string.
func parseSongFilter(r *http.Request, errs shared.FieldErrors) store.SongFilter {
	query := r.URL.Query()
	return store.SongFilter{
		GenreID:     queryInt64(query, "genre_id", errs),
		CountryID:   queryInt64(query, "country_id", errs),
		Search:      queryString(query, "search", errs),
		CountryName: queryString(query, "country_name", errs),
	}
}

// requestBaseURL returns the absolute URL of the request without its query.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.Path
}
