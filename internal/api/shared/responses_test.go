package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fake-spotify/catalog-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithMessage(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/songs/1", nil)

	RespondWithMessage(w, r, "Successfully deleted the song!", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Successfully deleted the song!"}`, w.Body.String())
}

func TestRespondWithValidationErrors(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/songs", nil)

	RespondWithValidationErrors(w, r, FieldErrors{"title": {"The title field is required."}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"title":["The title field is required."]}`, w.Body.String())
}

func TestRespondWithErrorAndLogHidesDetails(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
	r = r.WithContext(WithTraceID(r.Context(), "trace-123"))

	RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred",
		errors.New("dial tcp 10.1.2.3:5432: connection refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "An unexpected error occurred", body.Error)
	assert.Equal(t, "trace-123", body.TraceID)
	assert.NotContains(t, w.Body.String(), "10.1.2.3")
}

func TestRespondWithErrorAndLogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		opts     []ResponseOption
		wantLine bool
	}{
		{name: "client error stays below warn", status: http.StatusNotFound, wantLine: false},
		{
			name:     "elevated client error",
			status:   http.StatusNotFound,
			opts:     []ResponseOption{WithElevatedLogLevel()},
			wantLine: true,
		},
		{name: "server error", status: http.StatusInternalServerError, wantLine: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			warnLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
			r := httptest.NewRequest(http.MethodDelete, "/api/songs/9", nil)
			r = r.WithContext(logger.WithLogger(r.Context(), warnLogger))
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, r, tt.status, "Song not found", errors.New("entity not found: song"), tt.opts...)

			assert.Equal(t, tt.status, w.Code)
			if tt.wantLine {
				assert.Contains(t, buf.String(), "API error response")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
