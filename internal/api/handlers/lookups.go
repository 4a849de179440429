package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"weather-tool-service/internal/api/dto"
	"weather-tool-service/internal/ports"
)

const (
	defaultLookupLimit = 20
	maxLookupLimit     = 100
)

// LookupHandler exposes the get_weather invocation history.
type LookupHandler struct {
	Repo ports.LookupRepository
}

func (h *LookupHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultLookupLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxLookupLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	lookups, err := h.Repo.ListLookups(r.Context(), limit)
	if err != nil {
		slog.ErrorContext(r.Context(), "list lookups failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLookupsResponse{
		Lookups: make([]dto.LookupResponse, 0, len(lookups)),
	}
	for _, l := range lookups {
		res.Lookups = append(res.Lookups, dto.LookupResponse{
			ID:           l.ID,
			Location:     l.Location,
			Latitude:     l.Lat,
			Longitude:    l.Lon,
			Description:  optionalString(l.Description),
			TemperatureF: l.TemperatureF,
			Reply:        l.Reply,
			CreatedAt:    l.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
