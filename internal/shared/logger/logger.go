package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on environment.
// LOG_LEVEL (debug|info|warn|error) overrides the environment default.
func Setup(env string) {
	opts := &slog.HandlerOptions{
		Level: defaultLevel(env),
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(raw))); err == nil {
			opts.Level = level
		}
	}

	var handler slog.Handler
	if env == "production" || env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With("service", "taalentio-api")
	slog.SetDefault(logger)

	slog.Info("Logger initialisé", "env", env, "level", opts.Level.Level().String())
}

func defaultLevel(env string) slog.Level {
	switch env {
	case "local", "dev", "development":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
