package api

import (
	"errors"
	"net/http"

	"github.com/fake-spotify/catalog-api/internal/api/shared"
	"github.com/fake-spotify/catalog-api/internal/domain"
	"github.com/fake-spotify/catalog-api/internal/service"
	"github.com/fake-spotify/catalog-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError
	var fieldErrs shared.FieldErrors

	switch {
	// Not found errors
	case errors.Is(err, store.ErrSongNotFound),
		errors.Is(err, store.ErrCountryNotFound),
		errors.Is(err, store.ErrGenreNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Validation errors
	case errors.As(err, &validationErr),
		errors.As(err, &fieldErrs):
		return http.StatusUnprocessableEntity

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrSongNotFound):
		return "Song not found"
	case errors.Is(err, store.ErrCountryNotFound):
		return "Country not found"
	case errors.Is(err, store.ErrGenreNotFound):
		return "Genre not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"
	case errors.Is(err, service.ErrNothingUpdated):
		return "Could not update!"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err. Validation failures become a
// 422 field map; everything else is mapped to a status code and a safe
// message, with the redacted details only in the logs.
// If fallbackMsg is not empty it replaces the generic message of a 500.
// opts are passed on to shared.RespondWithErrorAndLog.
func HandleAPIError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	fallbackMsg string,
	opts ...shared.ResponseOption,
) {
	if fields, ok := validationFields(err); ok {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMsg != "" {
		message = fallbackMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// validationFields converts request and domain validation errors to the
// 422 field map.
func validationFields(err error) (shared.FieldErrors, bool) {
	if fields, ok := shared.AsFieldErrors(err); ok {
		return fields, true
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		fields := shared.FieldErrors{}
		fields.Add(validationErr.Field,
			"The "+shared.Attribute(validationErr.Field)+" "+validationErr.Message+".")
		return fields, true
	}

	return nil, false
}
