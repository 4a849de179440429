package cache

import (
	"context"
	"testing"
	"time"
	"weather-tool-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisObservationCacheRoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	c := NewRedisObservationCache(client, time.Minute)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "KBOS"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v, want miss", ok, err)
	}

	temp := 10.0
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	in := []domain.Observation{
		{StationID: "KBOS", Description: "Cloudy", TemperatureC: &temp, ObservedAt: at},
		{StationID: "KBOS"},
	}
	if err := c.Put(ctx, "KBOS", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "KBOS")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(got))
	}
	if got[0].Description != "Cloudy" || got[0].TemperatureC == nil || *got[0].TemperatureC != 10 {
		t.Fatalf("first observation = %+v", got[0])
	}
	if !got[0].ObservedAt.Equal(at) {
		t.Fatalf("observed_at = %v, want %v", got[0].ObservedAt, at)
	}
	if got[1].HasTemperature() {
		t.Fatalf("missing temperature must survive the round trip")
	}
}

func TestRedisObservationCacheExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisObservationCache(client, 30*time.Second)
	ctx := context.Background()

	if err := c.Put(ctx, "KBOS", []domain.Observation{{StationID: "KBOS", Description: "Fog"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(31 * time.Second)

	if _, ok, err := c.Get(ctx, "KBOS"); err != nil || ok {
		t.Fatalf("after ttl: ok=%v err=%v, want miss", ok, err)
	}
}

func TestRedisObservationCacheCorruptEntry(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisObservationCache(client, time.Minute)

	if err := mr.Set(observationKeyPrefix+"KBOS", "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, _, err := c.Get(context.Background(), "KBOS"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRedisObservationCacheRejectsNonPositiveTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()

	for _, ttl := range []time.Duration{0, -time.Minute} {
		c := NewRedisObservationCache(client, ttl)

		if err := c.Put(ctx, "KBOS", []domain.Observation{{StationID: "KBOS", Description: "Fog"}}); err == nil {
			t.Fatalf("ttl %s: expected error", ttl)
		}
	}

	mr.FastForward(72 * time.Hour)

	c := NewRedisObservationCache(client, time.Minute)
	if _, ok, err := c.Get(ctx, "KBOS"); err != nil || ok {
		t.Fatalf("ok=%v err=%v, want miss", ok, err)
	}
}
