package handlers

import (
	"net/http"
	"weather-tool-service/internal/api/dto"
	"weather-tool-service/internal/ports"
	"weather-tool-service/internal/services"
)

// WeatherHandler exposes the raw lookup without the tool's reply wording.
type WeatherHandler struct {
	Provider ports.ObservationProvider
}

func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	coords, ok := services.ParseCoordinates(q.Get("lat"), q.Get("lon"))
	if !ok {
		writeError(w, r, http.StatusBadRequest, "lat and lon must be non-zero numbers")
		return
	}

	result := services.LookupWeather(r.Context(), h.Provider, coords)

	writeJSON(w, r, http.StatusOK, dto.WeatherResponse{
		Description:  optionalString(result.Description),
		TemperatureF: result.TemperatureF,
		Available:    result.Available(),
	})
}
