package api

import (
	"net/http"
	"testing"

	"github.com/fake-spotify/catalog-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestHome(t *testing.T) {
	t.Parallel()

	h := NewHomeHandler(config.AppConfig{
		Name:   "Fake Spotify",
		Author: "Jane Doe",
		Email:  "jane@example.com",
	})

	w := doRequest(t, http.HandlerFunc(h.Home), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"app":"Fake Spotify","author":"Jane Doe","email":"jane@example.com"}`, w.Body.String())
}
