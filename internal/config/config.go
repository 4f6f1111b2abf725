// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/trendline/internal/dataset"
	"github.com/tomtom215/trendline/internal/logging"
	"github.com/tomtom215/trendline/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Reload    ReloadConfig    `koanf:"reload"`
	NATS      NATSConfig      `koanf:"nats"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`          // Read/write timeout for the HTTP server
	RequestTimeout  time.Duration `koanf:"request_timeout"`  // Per-request handler deadline
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // Graceful shutdown budget
}

// DataConfig selects where interaction events and the content catalog come from.
type DataConfig struct {
	Source      string `koanf:"source"` // csv or duckdb
	EventsPath  string `koanf:"events_path"`
	ItemsPath   string `koanf:"items_path"`
	DuckDBPath  string `koanf:"duckdb_path"`
	EventsTable string `koanf:"events_table"`
	ItemsTable  string `koanf:"items_table"`
}

// RecommendConfig holds the engine's tuning knobs and request defaults.
type RecommendConfig struct {
	BehaviorWeight      float64 `koanf:"behavior_weight"`
	AgeWeight           float64 `koanf:"age_weight"`
	AgeScale            float64 `koanf:"age_scale"`
	GenreBoost          float64 `koanf:"genre_boost"`
	DefaultTopK         int     `koanf:"default_top_k"`
	DefaultTopP         int     `koanf:"default_top_p"`
	DefaultLookbackDays int     `koanf:"default_lookback_days"`
	DefaultGravity      float64 `koanf:"default_gravity"`
	MaxTopK             int     `koanf:"max_top_k"`
	MaxTopP             int     `koanf:"max_top_p"`
	Workers             int     `koanf:"workers"` // 0 = runtime.NumCPU()
}

// ReloadConfig controls snapshot rebuilds.
type ReloadConfig struct {
	Interval        time.Duration `koanf:"interval"`     // 0 disables periodic rebuilds
	MinInterval     time.Duration `koanf:"min_interval"` // Minimum spacing between triggered rebuilds
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// NATSConfig holds the optional NATS reload listener settings.
type NATSConfig struct {
	Enabled       bool   `koanf:"enabled"`
	URL           string `koanf:"url"`
	ReloadSubject string `koanf:"reload_subject"`
	QueueGroup    string `koanf:"queue_group"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file, and the
// environment, in that order of precedence.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ToRecommendConfig converts the recommend section into engine configuration.
func (c *Config) ToRecommendConfig() *recommend.Config {
	rc := recommend.DefaultConfig()
	rc.Similarity.BehaviorWeight = c.Recommend.BehaviorWeight
	rc.Similarity.AgeWeight = c.Recommend.AgeWeight
	rc.Similarity.AgeScale = c.Recommend.AgeScale
	rc.Scoring.GenreBoost = c.Recommend.GenreBoost
	rc.Defaults.TopK = c.Recommend.DefaultTopK
	rc.Defaults.TopP = c.Recommend.DefaultTopP
	rc.Defaults.LookbackDays = c.Recommend.DefaultLookbackDays
	rc.Defaults.Gravity = c.Recommend.DefaultGravity
	rc.Limits.MaxTopK = c.Recommend.MaxTopK
	rc.Limits.MaxTopP = c.Recommend.MaxTopP
	rc.Workers = c.Recommend.Workers
	return rc
}

// DatasetOptions converts the data section into source options.
func (c *Config) DatasetOptions() dataset.Options {
	return dataset.Options{
		Kind:        c.Data.Source,
		EventsPath:  c.Data.EventsPath,
		ItemsPath:   c.Data.ItemsPath,
		DuckDBPath:  c.Data.DuckDBPath,
		EventsTable: c.Data.EventsTable,
		ItemsTable:  c.Data.ItemsTable,
	}
}

// BreakerConfig converts the reload section into circuit breaker settings.
func (c *Config) BreakerConfig() dataset.BreakerConfig {
	return dataset.BreakerConfig{
		ConsecutiveFailures: c.Reload.BreakerFailures,
		Timeout:             c.Reload.BreakerTimeout,
	}
}

// LoggingOptions converts the logging section into logger configuration.
func (c *Config) LoggingOptions() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Format = c.Logging.Format
	lc.Caller = c.Logging.Caller
	return lc
}
