package nws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"weather-tool-service/internal/domain"
	"weather-tool-service/internal/platform/obs"
	"weather-tool-service/internal/ports"
)

var (
	ErrNoStations     = errors.New("no observation stations near point")
	ErrNoObservations = errors.New("no observations reported")
)

type Options struct {
	BaseURL          string
	UserAgent        string
	Timeout          time.Duration
	MaxAttempts      int
	ObservationLimit int

	// Optional caches; nil disables them.
	StationCache     ports.StationCache
	ObservationCache ports.ObservationCache
}

// NWSProvider implements ObservationProvider using the National Weather
// Service API (api.weather.gov), the data behind the NOAA observation feeds.
//
// A lookup resolves the point to its nearby stations, then reads each
// station's recent observations. Point->station mappings are cached
// persistently; observations only when an ObservationCache is wired.
//
// The provider is safe for concurrent use.
type NWSProvider struct {
	session          *http.Client
	userAgent        string
	baseURL          string
	maxAttempts      int
	backoff          time.Duration
	observationLimit int
	stationCache     ports.StationCache
	observationCache ports.ObservationCache
}

func NewNWSProvider(opts Options) (*NWSProvider, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("NWS base url is empty")
	}
	if opts.UserAgent == "" {
		return nil, errors.New("NWS user agent is empty")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := opts.ObservationLimit
	if limit <= 0 {
		limit = 5
	}

	attempts := opts.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &NWSProvider{
		session:          &http.Client{Timeout: timeout},
		userAgent:        opts.UserAgent,
		baseURL:          opts.BaseURL,
		maxAttempts:      attempts,
		backoff:          200 * time.Millisecond,
		observationLimit: limit,
		stationCache:     opts.StationCache,
		observationCache: opts.ObservationCache,
	}, nil
}

// LatestObservations returns the recent observations of up to `stations`
// stations nearest to coords, nearest station first.
func (p *NWSProvider) LatestObservations(
	ctx context.Context,
	coords domain.Coordinates,
	stations int,
) (_ []domain.Observation, err error) {
	defer obs.Time(ctx, "nws.LatestObservations")(&err)

	if coords.Lat < -90 || coords.Lat > 90 || coords.Lon < -180 || coords.Lon > 180 {
		return nil, fmt.Errorf("coordinates out of range: %v", coords)
	}
	if stations < 1 {
		stations = 1
	}

	point := coords.PointPath()

	ids, err := p.stationsFor(ctx, point)
	if err != nil {
		return nil, fmt.Errorf("resolve stations for %s: %w", point, err)
	}
	if len(ids) > stations {
		ids = ids[:stations]
	}

	out := make([]domain.Observation, 0, len(ids)*p.observationLimit)
	for _, id := range ids {
		o, err := p.observationsFor(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("observations for station %s: %w", id, err)
		}
		out = append(out, o...)
	}

	if len(out) == 0 {
		return nil, ErrNoObservations
	}

	return out, nil
}

func (p *NWSProvider) stationsFor(ctx context.Context, point string) ([]string, error) {
	// Check persistent station cache before issuing external API calls.
	if p.stationCache != nil {
		ids, ok, err := p.stationCache.Get(ctx, point)
		if err != nil {
			return nil, fmt.Errorf("NWS get station cache: %w", err)
		}
		if ok && len(ids) > 0 {
			return ids, nil
		}
	}

	ids, err := p.fetchStations(ctx, point)
	if err != nil {
		return nil, err
	}

	if p.stationCache != nil {
		if err := p.stationCache.Put(ctx, point, ids); err != nil {
			slog.WarnContext(ctx, "station cache write failed", "point", point, "err", err)
		}
	}

	return ids, nil
}

func (p *NWSProvider) observationsFor(ctx context.Context, stationID string) ([]domain.Observation, error) {
	if p.observationCache != nil {
		o, ok, err := p.observationCache.Get(ctx, stationID)
		if err != nil {
			slog.WarnContext(ctx, "observation cache read failed", "station", stationID, "err", err)
		} else if ok {
			return o, nil
		}
	}

	o, err := p.fetchObservations(ctx, stationID)
	if err != nil {
		return nil, err
	}

	if p.observationCache != nil && len(o) > 0 {
		if err := p.observationCache.Put(ctx, stationID, o); err != nil {
			slog.WarnContext(ctx, "observation cache write failed", "station", stationID, "err", err)
		}
	}

	return o, nil
}
