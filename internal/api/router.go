package api

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"songify/internal/api/handlers/songs"
	"songify/internal/api/middleware"
	"songify/internal/metrics"
	_ "songify/swagger" // registers generated swagger docs
)

// NewRouter wires the song endpoints, health, metrics and swagger UI behind the shared middleware.
func NewRouter(songHandlers *songs.SongHandlers, m *metrics.Metrics) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Recovery, middleware.RequestID, middleware.Logger)
	if m != nil {
		router.Use(m.Middleware)
		router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	}

	router.HandleFunc("/health", songHandlers.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc("/songs", songHandlers.GetSongsHandler).Methods(http.MethodGet)
	router.HandleFunc("/songs", songHandlers.AddSongHandler).Methods(http.MethodPost)
	router.HandleFunc("/songs/{id}", songHandlers.GetSongHandler).Methods(http.MethodGet)
	router.HandleFunc("/songs/{id}", songHandlers.UpdateSongHandler).Methods(http.MethodPut)
	router.HandleFunc("/songs/{id}", songHandlers.PartiallyUpdateSongHandler).Methods(http.MethodPatch)
	router.HandleFunc("/songs/{id}", songHandlers.DeleteSongHandler).Methods(http.MethodDelete)

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return router
}
