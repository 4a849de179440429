package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"weather-tool-service/internal/adapters/cache"
	"weather-tool-service/internal/adapters/repositories"
	"weather-tool-service/internal/config"
	"weather-tool-service/internal/platform/db"
	"weather-tool-service/internal/platform/logging"

	"github.com/joho/godotenv"
)

// dbtool prepares a Postgres database: schema, then optional station seeds.
func main() {
	envErr := godotenv.Load()
	logging.New(config.Get("APP_ENV", "dev"), slog.LevelInfo, "dbtool")
	if envErr != nil {
		slog.Info("no .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		slog.Error("open database", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	seedPath := config.Get("STATION_SEED_PATH", "")
	if err := initAndSeed(conn, seedPath); err != nil {
		slog.Error("dbtool failed", "err", err)
		conn.Close()
		os.Exit(1)
	}
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	slog.Info("initializing database schema")
	if err := repositories.InitSchema(conn, "pgx"); err != nil {
		return err
	}
	slog.Info("schema ready")

	if seedPath == "" {
		return nil
	}

	slog.Info("seeding station cache", "path", seedPath)
	if err := repositories.SeedStationsFromJSON(context.Background(), cache.NewSQLStationCache(conn), seedPath); err != nil {
		return err
	}
	slog.Info("seeding complete")

	return nil
}
