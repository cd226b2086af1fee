package api

import (
	"net/http"

	"github.com/fake-spotify/catalog-api/internal/api/shared"
	"github.com/fake-spotify/catalog-api/internal/config"
)

// HomeHandler serves GET /.
type HomeHandler struct {
	response HomeResponse
}

// NewHomeHandler creates a HomeHandler answering with the configured
// application name, author and contact email.
func NewHomeHandler(cfg config.AppConfig) *HomeHandler {
	return &HomeHandler{
		response: HomeResponse{
			App:    cfg.Name,
			Author: cfg.Author,
			Email:  cfg.Email,
		},
	}
}

// Home handles GET / requests
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.response)
}
