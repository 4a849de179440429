package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"weather-tool-service/internal/platform/obs"
)

// SQLite backed cache mapping NWS point keys to station ids.
// Point keys are expected to be normalized (Coordinates.PointPath)
// by the caller.
type SqliteStationCache struct {
	DB *sql.DB
}

func NewSqliteStationCache(db *sql.DB) *SqliteStationCache {
	return &SqliteStationCache{DB: db}
}

// Fetch cached station ids for a point.
func (s *SqliteStationCache) Get(ctx context.Context, point string) (_ []string, _ bool, err error) {
	defer obs.Time(ctx, "station.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("station cache: db is nil")
	}

	point = strings.TrimSpace(point)
	if point == "" {
		return nil, false, errors.New("get station cache: point must not be empty")
	}

	var joined string
	err = s.DB.QueryRowContext(ctx, `
	SELECT station_ids
    FROM station_cache
    WHERE point = ?;
	`, point).Scan(&joined)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get station cache: query station_cache table: %w", err)
	}

	return splitStationIDs(joined), true, nil
}

// Store the station ids for a point.
func (s *SqliteStationCache) Put(ctx context.Context, point string, stationIDs []string) error {
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

	_, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO station_cache (
        point,
        station_ids
    )
    VALUES (?, ?);
	`, point, joinStationIDs(stationIDs))
	if err != nil {
		return fmt.Errorf("insert station cache point=%q: %w", point, err)
	}

	return nil
}
