package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "LOG_LEVEL", "PORT", "DB_DRIVER", "DB_PATH", "DATABASE_URL",
		"NWS_BASE_URL", "NWS_USER_AGENT", "NWS_TIMEOUT", "NWS_MAX_ATTEMPTS",
		"NWS_OBSERVATION_LIMIT", "REDIS_URL", "OBSERVATION_CACHE_TTL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppEnv != "dev" {
		t.Errorf("AppEnv = %q, want dev", cfg.AppEnv)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.NWS.BaseURL != "https://api.weather.gov" {
		t.Errorf("NWS.BaseURL = %q", cfg.NWS.BaseURL)
	}
	if cfg.NWS.MaxAttempts != 1 {
		t.Errorf("NWS.MaxAttempts = %d, want 1", cfg.NWS.MaxAttempts)
	}
	if cfg.NWS.Timeout != 10*time.Second {
		t.Errorf("NWS.Timeout = %v, want 10s", cfg.NWS.Timeout)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "postgres://localhost/weather")
	t.Setenv("NWS_BASE_URL", "http://127.0.0.1:9999/")
	t.Setenv("NWS_MAX_ATTEMPTS", "3")
	t.Setenv("NWS_TIMEOUT", "2s")
	t.Setenv("OBSERVATION_CACHE_TTL", "30s")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if cfg.NWS.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("NWS.BaseURL = %q, want trailing slash trimmed", cfg.NWS.BaseURL)
	}
	if cfg.NWS.MaxAttempts != 3 {
		t.Errorf("NWS.MaxAttempts = %d, want 3", cfg.NWS.MaxAttempts)
	}
	if cfg.NWS.Timeout != 2*time.Second {
		t.Errorf("NWS.Timeout = %v, want 2s", cfg.NWS.Timeout)
	}
	if cfg.ObservationCacheTTL != 30*time.Second {
		t.Errorf("ObservationCacheTTL = %v, want 30s", cfg.ObservationCacheTTL)
	}
}

func TestLoadFromEnvRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"app env":      {"APP_ENV": "staging"},
		"log level":    {"LOG_LEVEL": "loud"},
		"driver":       {"DB_DRIVER": "mysql"},
		"pgx no url":   {"DB_DRIVER": "pgx", "DATABASE_URL": ""},
		"attempts":     {"NWS_MAX_ATTEMPTS": "0"},
		"attempts nan": {"NWS_MAX_ATTEMPTS": "many"},
		"timeout":      {"NWS_TIMEOUT": "soon"},
		"limit":        {"NWS_OBSERVATION_LIMIT": "1000"},
		"ttl":          {"OBSERVATION_CACHE_TTL": "0s"},
		"ttl negative": {"OBSERVATION_CACHE_TTL": "-1m"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := LoadFromEnv(); err == nil {
				t.Fatalf("expected error for %v", env)
			}
		})
	}
}
