package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"weather-tool-service/internal/platform/obs"
)

const (
	pgSelectStationIDs = `
	SELECT station_ids
    FROM station_cache
    WHERE point = $1;
	`

	pgUpsertStationIDs = `
	INSERT INTO station_cache (point, station_ids)
    VALUES ($1, $2)
	ON CONFLICT (point) DO UPDATE
	SET station_ids = EXCLUDED.station_ids;
	`
)

// SQLStationCache is a Postgres-backed cache mapping NWS points to station ids.
type SQLStationCache struct {
	DB *sql.DB
}

func NewSQLStationCache(db *sql.DB) *SQLStationCache {
	return &SQLStationCache{DB: db}
}

// Fetch cached station ids for a point.
func (s *SQLStationCache) Get(ctx context.Context, point string) (_ []string, _ bool, err error) {
	defer obs.Time(ctx, "station.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("station cache: db is nil")
	}

	point = strings.TrimSpace(point)
	if point == "" {
		return nil, false, errors.New("get station cache: point must not be empty")
	}

	var joined string
	err = s.DB.QueryRowContext(ctx, pgSelectStationIDs, point).Scan(&joined)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get station cache: query station_cache table: %w", err)
	}

	return splitStationIDs(joined), true, nil
}

// Store the station ids for a point.
func (s *SQLStationCache) Put(ctx context.Context, point string, stationIDs []string) error {
	if s.DB == nil {
		return errors.New("station cache: db is nil")
	}

	point = strings.TrimSpace(point)
	if point == "" {
		return errors.New("insert station cache: point must not be empty")
	}

	if len(stationIDs) == 0 {
		return nil
	}

	_, err := s.DB.ExecContext(ctx, pgUpsertStationIDs, point, joinStationIDs(stationIDs))
	if err != nil {
		return fmt.Errorf("insert station cache point=%q: %w", point, err)
	}

	return nil
}

func joinStationIDs(ids []string) string {
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		clean = append(clean, id)
	}
	return strings.Join(clean, ",")
}

func splitStationIDs(joined string) []string {
	out := []string{}
	for _, id := range strings.Split(joined, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
