package config

import (
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Logging    LoggingConfig    `json:"logging"`
	HTTP       HTTPConfig       `json:"http"`
	NewsAPI    NewsAPIConfig    `json:"newsapi"`
	GDELT      GDELTConfig      `json:"gdelt"`
	Summarizer SummarizerConfig `json:"summarizer"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Cache      CacheConfig      `json:"cache"`
	CORS       CORSConfig       `json:"cors"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"5000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"30s"`
}

type NewsAPIConfig struct {
	BaseURL      string        `json:"base_url" env:"NEWS_API_BASE_URL" default:"https://newsapi.org"`
	APIKey       string        `json:"-" env:"NEWS_API_KEY"`
	Country      string        `json:"country" env:"NEWS_API_COUNTRY" default:"us"`
	Category     string        `json:"category" env:"NEWS_API_CATEGORY" default:"general"`
	PageSize     int           `json:"page_size" env:"NEWS_API_PAGE_SIZE" default:"5"`
	MaxHeadlines int           `json:"max_headlines" env:"NEWS_API_MAX_HEADLINES" default:"3"`
	Timeout      time.Duration `json:"timeout" env:"NEWS_API_TIMEOUT" default:"10s"`
}

type GDELTConfig struct {
	BaseURL    string        `json:"base_url" env:"GDELT_BASE_URL" default:"https://api.gdeltproject.org"`
	Query      string        `json:"query" env:"GDELT_QUERY" default:"sourcelang:english"`
	MaxRecords int           `json:"max_records" env:"GDELT_MAX_RECORDS" default:"50"`
	WindowDays int           `json:"window_days" env:"GDELT_WINDOW_DAYS" default:"7"`
	MaxEvents  int           `json:"max_events" env:"GDELT_MAX_EVENTS" default:"10"`
	Timeout    time.Duration `json:"timeout" env:"GDELT_TIMEOUT" default:"10s"`
}

type SummarizerConfig struct {
	BaseURL     string        `json:"base_url" env:"SUMMARIZER_BASE_URL" default:"https://api-inference.huggingface.co"`
	Token       string        `json:"-" env:"HF_TOKEN"`
	Model       string        `json:"model" env:"SUMMARIZER_MODEL" default:"facebook/bart-large-cnn"`
	MaxLength   int           `json:"max_length" env:"SUMMARIZER_MAX_LENGTH" default:"450"`
	MinLength   int           `json:"min_length" env:"SUMMARIZER_MIN_LENGTH" default:"150"`
	MaxArticles int           `json:"max_articles" env:"SUMMARIZER_MAX_ARTICLES" default:"3"`
	Timeout     time.Duration `json:"timeout" env:"SUMMARIZER_TIMEOUT" default:"30s"`
}

type RateLimitConfig struct {
	SummarizerInterval time.Duration `json:"summarizer_interval" env:"RATE_LIMIT_SUMMARIZER_INTERVAL" default:"2s"`
}

type CacheConfig struct {
	NewsTTL time.Duration `json:"news_ttl" env:"CACHE_NEWS_TTL" default:"60s"`
}

type CORSConfig struct {
	AllowOrigins string `json:"allow_origins" env:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173"`
}

// Origins splits the configured origin list.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig
func Load() (*Config, error) {
	return NewConfig()
}
