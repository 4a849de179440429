package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestJSONLoggerNamesWeatherLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "prod", slog.LevelWarn)

	logger.Log(context.Background(), LevelWeather, "lookup", "temp_f", 50.0)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if rec["level"] != "WEATHER" {
		t.Fatalf("level = %v, want WEATHER", rec["level"])
	}
	if rec["msg"] != "lookup" {
		t.Fatalf("msg = %v, want lookup", rec["msg"])
	}
}

func TestWeatherLevelPassesWarnThreshold(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "prod", slog.LevelWarn)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Log(context.Background(), LevelWeather, "shown")
	if buf.Len() == 0 {
		t.Fatalf("weather level should pass the warn threshold")
	}
}

func TestDevLoggerWritesWeatherLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "dev", slog.LevelDebug)

	logger.Log(context.Background(), LevelWeather, "lookup")
	if !bytes.Contains(buf.Bytes(), []byte("WEATHER")) {
		t.Fatalf("expected WEATHER in %q", buf.String())
	}
}
