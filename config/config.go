// Package config reads the view cache settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	cache "github.com/bibliothecadao/eternum-viewcache"
	"github.com/bibliothecadao/eternum-viewcache/indexer"
	"github.com/bibliothecadao/eternum-viewcache/types"
)

/*
Config holds everything needed to wire a view client.

Zero values are never used directly: every field has an envDefault,
so Parse on an empty environment yields a working local setup.
*/
type Config struct {
	CacheTTL     time.Duration `env:"VIEWS_CACHE_TTL" envDefault:"5s"`
	CacheMaxSize int           `env:"VIEWS_CACHE_MAX_SIZE" envDefault:"1000"`

	ToriiURL       string        `env:"TORII_SQL_URL" envDefault:"http://localhost:8080/sql"`
	ToriiTimeout   time.Duration `env:"TORII_TIMEOUT" envDefault:"10s"`
	ToriiRateLimit float64       `env:"TORII_RATE_LIMIT" envDefault:"20"`
	ToriiRateBurst int           `env:"TORII_RATE_BURST" envDefault:"5"`

	// UpdatesURL is the optional websocket feed that drives invalidation.
	UpdatesURL string `env:"TORII_UPDATES_URL"`

	Account  string `env:"VIEWS_ACCOUNT"`
	LogLevel string `env:"VIEWS_LOG_LEVEL" envDefault:"info"`

	// TraceEndpoint is the OTLP/HTTP traces URL. Empty disables tracing.
	TraceEndpoint string `env:"VIEWS_OTEL_ENDPOINT"`
}

// Parse loads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ToriiRateLimit < 0 {
		return Config{}, fmt.Errorf("parse env: TORII_RATE_LIMIT must not be negative, got %v", cfg.ToriiRateLimit)
	}
	return cfg, nil
}

// CacheOptions maps the cache settings. metrics may be nil.
func (c Config) CacheOptions(metrics types.Metrics) cache.Options {
	return cache.Options{
		TTL:     c.CacheTTL,
		MaxSize: c.CacheMaxSize,
		Metrics: metrics,
	}
}

func (c Config) HTTPOptions() indexer.HTTPOptions {
	return indexer.HTTPOptions{
		Timeout:   c.ToriiTimeout,
		RateLimit: c.ToriiRateLimit,
		Burst:     c.ToriiRateBurst,
	}
}

// Logger builds a production zap logger at LogLevel.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
