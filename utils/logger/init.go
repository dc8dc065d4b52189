package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

type logConfig struct {
	Level  slog.Level
	Format string
}

func getLogConfig() logConfig {
	cfg := logConfig{
		Level:  slog.LevelInfo,
		Format: "text",
	}

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		cfg.Level = slog.LevelDebug
	case "warn":
		cfg.Level = slog.LevelWarn
	case "error":
		cfg.Level = slog.LevelError
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		cfg.Format = "json"
	}

	return cfg
}

func InitLogger() *slog.Logger {
	cfg := getLogConfig()
	options := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, options)
	} else {
		handler = slog.NewTextHandler(os.Stdout, options)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", cfg.Level.String(), "format", cfg.Format)

	return Logger
}
