package ports

import (
	"context"
	"weather-tool-service/internal/domain"
)

// Maps an NWS point key ("lat,lon") to the ordered list of nearby station ids.
type StationCache interface {
	Get(ctx context.Context, point string) ([]string, bool, error)
	Put(ctx context.Context, point string, stationIDs []string) error
}

// Short-lived cache of a station's latest observations.
type ObservationCache interface {
	Get(ctx context.Context, stationID string) ([]domain.Observation, bool, error)
	Put(ctx context.Context, stationID string, observations []domain.Observation) error
}
