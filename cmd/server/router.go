package main

import (
	"net/http"

	"github.com/fake-spotify/catalog-api/internal/api"
	apiMiddleware "github.com/fake-spotify/catalog-api/internal/api/middleware"
	"github.com/fake-spotify/catalog-api/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	pages := api.PageSettings{
		PerPage:    app.config.Pagination.PerPage,
		MaxPerPage: app.config.Pagination.MaxPerPage,
	}

	homeHandler := api.NewHomeHandler(app.config.App)
	songHandler := api.NewSongHandler(app.songService, pages, app.logger)
	catalogHandler := api.NewCatalogHandler(app.catalogService, pages, app.logger)

	r.Get("/", homeHandler.Home)

	r.Route("/api", func(r chi.Router) {
		r.Route("/songs", func(r chi.Router) {
			r.Get("/", songHandler.ListSongs)
			r.Post("/", songHandler.CreateSong)
			r.Get("/{id}", songHandler.GetSong)
			r.Patch("/{id}", songHandler.UpdateSong)
			r.Delete("/{id}", songHandler.DeleteSong)
		})

		r.Get("/countries", catalogHandler.ListCountries)
		r.Get("/countries/{id}", catalogHandler.GetCountry)

		r.Get("/genres", catalogHandler.ListGenres)
		r.Get("/genres/{id}", catalogHandler.GetGenre)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
