// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	Port     string

	// DBDriver selects the storage backend: "sqlite" (DBPath) or "pgx" (DatabaseURL).
	DBDriver    string
	DBPath      string
	DatabaseURL string

	NWS NWSConfig

	// RedisURL enables the observation cache when set.
	RedisURL            string
	ObservationCacheTTL time.Duration
}

type NWSConfig struct {
	BaseURL          string
	UserAgent        string
	Timeout          time.Duration
	MaxAttempts      int
	ObservationLimit int
}

func LoadFromEnv() (Config, error) {
	appEnv := Get("APP_ENV", "dev")
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	level, err := parseLogLevel(Get("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	driver := Get("DB_DRIVER", "sqlite")
	switch driver {
	case "sqlite", "pgx":
	default:
		return Config{}, fmt.Errorf("invalid DB_DRIVER %q (allowed: sqlite, pgx)", driver)
	}

	databaseURL := Get("DATABASE_URL", "")
	if driver == "pgx" && databaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required when DB_DRIVER=pgx")
	}

	timeout, err := getDuration("NWS_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	maxAttempts, err := getInt("NWS_MAX_ATTEMPTS", 1)
	if err != nil {
		return Config{}, err
	}
	if maxAttempts < 1 {
		return Config{}, fmt.Errorf("invalid NWS_MAX_ATTEMPTS %d (must be >= 1)", maxAttempts)
	}

	obsLimit, err := getInt("NWS_OBSERVATION_LIMIT", 5)
	if err != nil {
		return Config{}, err
	}
	if obsLimit < 1 || obsLimit > 500 {
		return Config{}, fmt.Errorf("invalid NWS_OBSERVATION_LIMIT %d (allowed: 1..500)", obsLimit)
	}

	cacheTTL, err := getDuration("OBSERVATION_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("invalid OBSERVATION_CACHE_TTL %s (must be > 0)", cacheTTL)
	}

	return Config{
		AppEnv:      appEnv,
		LogLevel:    level,
		Port:        Get("PORT", "8080"),
		DBDriver:    driver,
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: databaseURL,
		NWS: NWSConfig{
			BaseURL:          strings.TrimRight(Get("NWS_BASE_URL", "https://api.weather.gov"), "/"),
			UserAgent:        Get("NWS_USER_AGENT", "weather-tool-service (ops@example.com)"),
			Timeout:          timeout,
			MaxAttempts:      maxAttempts,
			ObservationLimit: obsLimit,
		},
		RedisURL:            Get("REDIS_URL", ""),
		ObservationCacheTTL: cacheTTL,
	}, nil
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
