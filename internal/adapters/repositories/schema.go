package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"weather-tool-service/internal/ports"
)

// Initialize the database schema for the given driver ("sqlite" or "pgx").
func InitSchema(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var createLookupsQuery string
	switch driver {
	case "sqlite":
		createLookupsQuery = `
		CREATE TABLE IF NOT EXISTS lookups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			location TEXT NOT NULL,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			description TEXT NOT NULL,
			temperature_f REAL NOT NULL,
			reply TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		`
	case "pgx":
		createLookupsQuery = `
		CREATE TABLE IF NOT EXISTS lookups (
			id BIGSERIAL PRIMARY KEY,
			location TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			description TEXT NOT NULL,
			temperature_f DOUBLE PRECISION NOT NULL,
			reply TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		`
	default:
		return fmt.Errorf("init schema: unsupported driver %q", driver)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationCacheQuery := `
	CREATE TABLE IF NOT EXISTS station_cache (
        point TEXT PRIMARY KEY,
        station_ids TEXT NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_lookups_created_at
    ON lookups(created_at);
	`

	statements := []string{
		createStationCacheQuery,
		createLookupsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StationSeed struct {
	Point      string   `json:"point"`
	StationIDs []string `json:"station_ids"`
}

// Warm a station cache from a JSON file of point -> station ids.
func SeedStationsFromJSON(ctx context.Context, c ports.StationCache, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stations: read %q: %w", jsonPath, err)
	}

	var data []StationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stations: parse json: %w", err)
	}

	for i, item := range data {
		point := strings.TrimSpace(item.Point)
		if point == "" {
			return fmt.Errorf("seed stations: item at index %d: point cannot be empty", i+1)
		}
		if len(item.StationIDs) == 0 {
			return fmt.Errorf("seed stations: item at index %d: station_ids cannot be empty", i+1)
		}

		if err := c.Put(ctx, point, item.StationIDs); err != nil {
			return fmt.Errorf("seed stations: point=%q: %w", point, err)
		}
	}

	return nil
}
