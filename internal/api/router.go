package api

import (
	"net/http"
	"weather-tool-service/internal/api/handlers"
	"weather-tool-service/internal/ports"
	"weather-tool-service/internal/tools"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(provider ports.ObservationProvider, registry *tools.Registry, repo ports.LookupRepository) http.Handler {
	weatherHandler := &handlers.WeatherHandler{Provider: provider}
	toolsHandler := &handlers.ToolsHandler{Registry: registry}
	lookupHandler := &handlers.LookupHandler{Repo: repo}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)
	r.Get("/weather", weatherHandler.Get)
	r.Get("/lookups", lookupHandler.List)

	r.Route("/tools", func(r chi.Router) {
		r.Get("/", toolsHandler.List)
		r.Post("/get_weather", toolsHandler.GetWeather)
		r.Post("/call", toolsHandler.Call)
	})

	return r
}
