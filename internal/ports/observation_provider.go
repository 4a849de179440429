package ports

import (
	"context"
	"weather-tool-service/internal/domain"
)

// Contract for retrieving recent station observations near a location.
type ObservationProvider interface {
	// Return observations from up to `stations` stations nearest to coords,
	// most recent first within each station.
	LatestObservations(ctx context.Context, coords domain.Coordinates, stations int) ([]domain.Observation, error)
}
