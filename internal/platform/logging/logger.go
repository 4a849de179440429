// Package logging builds the process-wide slog logger.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// LevelWeather sits between WARN and ERROR and is reserved for weather
// lookup diagnostics, so they stay visible when LOG_LEVEL=warn.
const LevelWeather = slog.Level(6)

const levelWeatherName = "WEATHER"

// New returns a tint console logger for dev and a JSON logger otherwise,
// and installs it as the slog default.
func New(appEnv string, level slog.Level, appName string) *slog.Logger {
	logger := newLogger(os.Stdout, appEnv, level).With("app", appName)
	if appEnv != "dev" {
		logger = logger.With("env", appEnv)
	}
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, appEnv string, level slog.Level) *slog.Logger {
	if appEnv == "dev" {
		h := tint.NewHandler(w, &tint.Options{
			Level:       level,
			TimeFormat:  time.Kitchen,
			ReplaceAttr: replaceLevelName,
		})
		return slog.New(h)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelName,
	})
	return slog.New(h)
}

func replaceLevelName(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey && len(groups) == 0 {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelWeather {
			a.Value = slog.StringValue(levelWeatherName)
		}
	}
	return a
}

// Weather logs msg at LevelWeather on the default logger.
func Weather(ctx context.Context, msg string, args ...any) {
	slog.Default().Log(ctx, LevelWeather, msg, args...)
}
