package nws

import (
	"context"
	"sync"
	"weather-tool-service/internal/domain"
)

// MockObservationProvider returns canned observations (or Err) and counts calls.
type MockObservationProvider struct {
	Observations []domain.Observation
	Err          error

	mu    sync.Mutex
	calls []domain.Coordinates
}

func NewMockObservationProvider(observations ...domain.Observation) *MockObservationProvider {
	return &MockObservationProvider{Observations: observations}
}

func (p *MockObservationProvider) LatestObservations(
	ctx context.Context,
	coords domain.Coordinates,
	stations int,
) ([]domain.Observation, error) {
	p.mu.Lock()
	p.calls = append(p.calls, coords)
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	return p.Observations, nil
}

// Calls returns the coordinates of every LatestObservations call so far.
func (p *MockObservationProvider) Calls() []domain.Coordinates {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Coordinates(nil), p.calls...)
}

// Celsius is a test helper for building observations.
func Celsius(v float64) *float64 { return &v }
