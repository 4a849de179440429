package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"weather-tool-service/internal/adapters/cache"
	"weather-tool-service/internal/adapters/nws"
	"weather-tool-service/internal/adapters/repositories"
	"weather-tool-service/internal/api"
	"weather-tool-service/internal/config"
	"weather-tool-service/internal/platform/db"
	"weather-tool-service/internal/platform/logging"
	"weather-tool-service/internal/ports"
	"weather-tool-service/internal/tools"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQL storage, Redis, NWS) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logging.New(cfg.AppEnv, cfg.LogLevel, "weather-tool-service")
	if envErr != nil {
		slog.Info("no .env file found (using environment variables)")
	}

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

type storage struct {
	db       *sql.DB
	stations ports.StationCache
	lookups  ports.LookupRepository
}

func run(cfg config.Config) error {
	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer store.db.Close()

	if seedPath := config.Get("STATION_SEED_PATH", ""); seedPath != "" {
		if err := repositories.SeedStationsFromJSON(context.Background(), store.stations, seedPath); err != nil {
			return err
		}
		slog.Info("station cache seeded", "path", seedPath)
	}

	opts := nws.Options{
		BaseURL:          cfg.NWS.BaseURL,
		UserAgent:        cfg.NWS.UserAgent,
		Timeout:          cfg.NWS.Timeout,
		MaxAttempts:      cfg.NWS.MaxAttempts,
		ObservationLimit: cfg.NWS.ObservationLimit,
		StationCache:     store.stations,
	}

	if cfg.RedisURL != "" {
		client, err := openRedis(cfg.RedisURL)
		if err != nil {
			return err
		}
		if client != nil {
			defer client.Close()
			opts.ObservationCache = cache.NewRedisObservationCache(client, cfg.ObservationCacheTTL)
		}
	}

	provider, err := nws.NewNWSProvider(opts)
	if err != nil {
		return err
	}

	registry := tools.NewRegistry(tools.NewGetWeatherTool(provider, store.lookups))
	router := api.NewRouter(provider, registry, store.lookups)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.NWS.Timeout*time.Duration(cfg.NWS.MaxAttempts)*3 + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "db_driver", cfg.DBDriver, "observation_cache", opts.ObservationCache != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-stop:
	}

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStorage opens the configured database, ensures the schema and picks the
// matching station cache and lookup repository.
func openStorage(cfg config.Config) (storage, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch cfg.DBDriver {
	case "pgx":
		conn, err = db.Open(cfg.DatabaseURL)
	default:
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return storage{}, fmt.Errorf("create db dir %q: %w", dir, err)
			}
		}
		conn, err = db.OpenSQLite(cfg.DBPath)
	}
	if err != nil {
		return storage{}, err
	}

	if err := repositories.InitSchema(conn, cfg.DBDriver); err != nil {
		conn.Close()
		return storage{}, err
	}

	if cfg.DBDriver == "pgx" {
		return storage{
			db:       conn,
			stations: cache.NewSQLStationCache(conn),
			lookups:  repositories.NewSQLLookupRepository(conn),
		}, nil
	}

	return storage{
		db:       conn,
		stations: cache.NewSqliteStationCache(conn),
		lookups:  repositories.NewSqliteLookupRepository(conn),
	}, nil
}

// openRedis returns nil (and logs) when the server is unreachable so the
// service keeps running without the observation cache.
func openRedis(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, observation cache disabled", "addr", opt.Addr, "err", err)
		client.Close()
		return nil, nil
	}

	return client, nil
}
