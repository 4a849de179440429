package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"weather-tool-service/internal/domain"
	"weather-tool-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const observationKeyPrefix = "weather:obs:"

// RedisObservationCache keeps a station's latest observations for a short TTL.
// Entries expire on their own; there is no explicit invalidation. A
// non-positive TTL would write keys that never expire, so Put rejects it.
type RedisObservationCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisObservationCache(client *redis.Client, ttl time.Duration) *RedisObservationCache {
	return &RedisObservationCache{Client: client, TTL: ttl}
}

type cachedObservation struct {
	StationID    string    `json:"station_id"`
	Description  string    `json:"description,omitempty"`
	TemperatureC *float64  `json:"temperature_c"`
	ObservedAt   time.Time `json:"observed_at"`
}

func (c *RedisObservationCache) Get(ctx context.Context, stationID string) (_ []domain.Observation, _ bool, err error) {
	defer obs.Time(ctx, "observation.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("observation cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, observationKeyPrefix+stationID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get observation cache station=%q: %w", stationID, err)
	}

	var cached []cachedObservation
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("decode observation cache station=%q: %w", stationID, err)
	}

	out := make([]domain.Observation, 0, len(cached))
	for _, o := range cached {
		out = append(out, domain.Observation{
			StationID:    o.StationID,
			Description:  o.Description,
			TemperatureC: o.TemperatureC,
			ObservedAt:   o.ObservedAt,
		})
	}

	return out, true, nil
}

func (c *RedisObservationCache) Put(ctx context.Context, stationID string, observations []domain.Observation) error {
	if c.Client == nil {
		return errors.New("observation cache: client is nil")
	}
	if c.TTL <= 0 {
		return fmt.Errorf("observation cache: ttl must be positive, got %s", c.TTL)
	}

	if len(observations) == 0 {
		return nil
	}

	cached := make([]cachedObservation, 0, len(observations))
	for _, o := range observations {
		cached = append(cached, cachedObservation{
			StationID:    o.StationID,
			Description:  o.Description,
			TemperatureC: o.TemperatureC,
			ObservedAt:   o.ObservedAt,
		})
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("encode observation cache station=%q: %w", stationID, err)
	}

	if err := c.Client.Set(ctx, observationKeyPrefix+stationID, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("set observation cache station=%q: %w", stationID, err)
	}

	return nil
}
