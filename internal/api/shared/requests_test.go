package shared

import (
	"errors"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleSongRequest struct {
	Title     *string  `json:"title"      validate:"required,min=3"`
	Duration  *int     `json:"duration"   validate:"required,min=0"`
	CountryID *int64   `json:"country_id" validate:"required"`
	GenreIDs  *[]int64 `json:"genre_ids"`
}

func decodeAndValidate(t *testing.T, body string) (FieldErrors, error) {
	t.Helper()

	var req sampleSongRequest
	r := httptest.NewRequest("POST", "/api/songs", strings.NewReader(body))
	if err := DecodeJSON(r, &req); err != nil {
		fields, ok := AsFieldErrors(err)
		if !ok {
			return nil, err
		}
		return fields, nil
	}
	if err := ValidateRequest(req); err != nil {
		fields, ok := AsFieldErrors(err)
		require.True(t, ok)
		return fields, nil
	}
	return nil, nil
}

func TestValidationMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected FieldErrors
	}{
		{
			name: "valid",
			body: `{"title":"Test Song","duration":180,"country_id":1,"genre_ids":[2,3]}`,
		},
		{
			name: "zero duration is valid",
			body: `{"title":"Test Song","duration":0,"country_id":1}`,
		},
		{
			name: "missing fields",
			body: `{}`,
			expected: FieldErrors{
				"title":      {"The title field is required."},
				"duration":   {"The duration field is required."},
				"country_id": {"The country id field is required."},
			},
		},
		{
			name:     "short title",
			body:     `{"title":"ab","duration":1,"country_id":1}`,
			expected: FieldErrors{"title": {"The title must be at least 3 characters."}},
		},
		{
			name:     "negative duration",
			body:     `{"title":"abc","duration":-5,"country_id":1}`,
			expected: FieldErrors{"duration": {"The duration must be at least 0."}},
		},
		{
			name:     "duration not an integer",
			body:     `{"title":"abc","duration":"long","country_id":1}`,
			expected: FieldErrors{"duration": {"The duration must be an integer."}},
		},
		{
			name:     "genre ids not an array",
			body:     `{"title":"abc","duration":1,"country_id":1,"genre_ids":"rock"}`,
			expected: FieldErrors{"genre_ids": {"The genre ids must be an array."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fields, err := decodeAndValidate(t, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fields)
		})
	}
}

func TestEmptyBodyIsValidated(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "  \n"} {
		fields, err := decodeAndValidate(t, body)
		require.NoError(t, err)
		assert.Equal(t, FieldErrors{
			"title":      {"The title field is required."},
			"duration":   {"The duration field is required."},
			"country_id": {"The country id field is required."},
		}, fields)
	}

	var req sampleSongRequest
	require.NoError(t, DecodeJSON(httptest.NewRequest("PATCH", "/api/songs/1", nil), &req))
	assert.Nil(t, req.Title)
}

func TestMalformedJSONIsNotAFieldError(t *testing.T) {
	t.Parallel()

	_, err := decodeAndValidate(t, `{"title":`)
	require.Error(t, err)

	_, ok := AsFieldErrors(errors.New("other"))
	assert.False(t, ok)
}

func TestFieldMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "The title may not be greater than 255 characters.",
		FieldMessage("title", "max", "255", reflect.String))
	assert.Equal(t, "The country id must be greater than 0.",
		FieldMessage("country_id", "gt", "0", reflect.Int64))
	assert.Equal(t, "The genre ids is invalid.",
		FieldMessage("genre_ids", "unique", "", reflect.Slice))
}

func TestFieldErrorsAsError(t *testing.T) {
	t.Parallel()

	var err error = FieldErrors{"title": {"The title field is required."}}
	fields, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The title field is required."}, fields["title"])
	assert.Contains(t, err.Error(), "The title field is required.")
}
