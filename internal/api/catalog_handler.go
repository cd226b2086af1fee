package api

import (
	"log/slog"
	"net/http"

	"github.com/fake-spotify/catalog-api/internal/api/shared"
	"github.com/fake-spotify/catalog-api/internal/platform/logger"
	"github.com/fake-spotify/catalog-api/internal/service"
)

const catalogHandlerComponent = "catalog_handler"

// CatalogHandler handles country and genre HTTP requests
type CatalogHandler struct {
	catalogService service.CatalogService
	pages          PageSettings
	logger         *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, pages PageSettings, logger *slog.Logger) *CatalogHandler {
	if catalogService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalogService cannot be nil for CatalogHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogHandler{
		catalogService: catalogService,
		pages:          pages.normalize(),
		logger:         logger.With(slog.String("component", catalogHandlerComponent)),
	}
}

// ListCountries handles GET /api/countries requests
func (h *CatalogHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	errs := shared.FieldErrors{}
	page := parsePageRequest(r, h.pages, errs)
	if len(errs) > 0 {
		shared.RespondWithValidationErrors(w, r, errs)
		return
	}

	result, err := h.catalogService.ListCountries(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list countries")
		return
	}

	logger.ForComponent(r.Context(), h.logger, catalogHandlerComponent).Debug("listed countries",
		slog.Int("page", result.CurrentPage),
		slog.Int("total", result.Total))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetCountry handles GET /api/countries/{id} requests
func (h *CatalogHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	country, err := h.catalogService.GetCountry(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get country")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, country)
}

// ListGenres handles GET /api/genres requests
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	errs := shared.FieldErrors{}
	page := parsePageRequest(r, h.pages, errs)
	if len(errs) > 0 {
		shared.RespondWithValidationErrors(w, r, errs)
		return
	}

	result, err := h.catalogService.ListGenres(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list genres")
		return
	}

	logger.ForComponent(r.Context(), h.logger, catalogHandlerComponent).Debug("listed genres",
		slog.Int("page", result.CurrentPage),
		slog.Int("total", result.Total))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetGenre handles GET /api/genres/{id} requests
func (h *CatalogHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	genre, err := h.catalogService.GetGenre(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get genre")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, genre)
}
