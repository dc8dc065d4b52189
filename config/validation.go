package config

import (
	"fmt"
	"time"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateNewsAPIConfig(&config.NewsAPI); err != nil {
		return fmt.Errorf("newsapi config validation failed: %w", err)
	}

	if err := validateGDELTConfig(&config.GDELT); err != nil {
		return fmt.Errorf("gdelt config validation failed: %w", err)
	}

	if err := validateSummarizerConfig(&config.Summarizer); err != nil {
		return fmt.Errorf("summarizer config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[config.Level] {
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	if config.Format != "json" && config.Format != "text" {
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}

func validateNewsAPIConfig(config *NewsAPIConfig) error {
	if config.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}

	if config.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", config.PageSize)
	}

	if config.MaxHeadlines < 1 {
		return fmt.Errorf("max headlines must be at least 1, got %d", config.MaxHeadlines)
	}

	if config.MaxHeadlines > config.PageSize {
		return fmt.Errorf("max headlines (%d) must not exceed page size (%d)", config.MaxHeadlines, config.PageSize)
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", config.Timeout)
	}

	return nil
}

func validateGDELTConfig(config *GDELTConfig) error {
	if config.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}

	if config.Query == "" {
		return fmt.Errorf("query must not be empty")
	}

	if config.MaxRecords < 1 {
		return fmt.Errorf("max records must be at least 1, got %d", config.MaxRecords)
	}

	if config.WindowDays < 1 {
		return fmt.Errorf("window days must be at least 1, got %d", config.WindowDays)
	}

	if config.MaxEvents < 1 {
		return fmt.Errorf("max events must be at least 1, got %d", config.MaxEvents)
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", config.Timeout)
	}

	return nil
}

func validateSummarizerConfig(config *SummarizerConfig) error {
	if config.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}

	if config.Model == "" {
		return fmt.Errorf("model must not be empty")
	}

	if config.MinLength < 1 {
		return fmt.Errorf("min length must be at least 1, got %d", config.MinLength)
	}

	if config.MaxLength <= config.MinLength {
		return fmt.Errorf("max length (%d) must exceed min length (%d)", config.MaxLength, config.MinLength)
	}

	if config.MaxArticles < 1 {
		return fmt.Errorf("max articles must be at least 1, got %d", config.MaxArticles)
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", config.Timeout)
	}

	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	if config.SummarizerInterval < 100*time.Millisecond {
		return fmt.Errorf("summarizer interval must be at least 100ms, got %v", config.SummarizerInterval)
	}

	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	if config.NewsTTL < time.Second {
		return fmt.Errorf("news TTL must be at least 1s, got %v", config.NewsTTL)
	}

	return nil
}
