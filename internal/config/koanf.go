// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/trendline/internal/dataset"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/trendline/config.yaml",
	"/etc/trendline/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Timeout:         30 * time.Second,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			Source:      dataset.KindCSV,
			EventsPath:  "data/data_joined.csv",
			ItemsPath:   "data/items.csv",
			DuckDBPath:  "data/trendline.duckdb",
			EventsTable: "events",
			ItemsTable:  "items",
		},
		Recommend: RecommendConfig{
			BehaviorWeight:      0.7,
			AgeWeight:           0.3,
			AgeScale:            10,
			GenreBoost:          1.2,
			DefaultTopK:         10,
			DefaultTopP:         10,
			DefaultLookbackDays: 30,
			DefaultGravity:      1.5,
			MaxTopK:             1000,
			MaxTopP:             1000,
			Workers:             0,
		},
		Reload: ReloadConfig{
			Interval:        0, // Periodic rebuilds are opt-in
			MinInterval:     10 * time.Second,
			BreakerFailures: 3,
			BreakerTimeout:  time.Minute,
		},
		NATS: NATSConfig{
			Enabled:       false,
			URL:           "nats://127.0.0.1:4222",
			ReloadSubject: "trendline.reload",
			QueueGroup:    "trendline",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// HTTP_PORT -> server.port, RECOMMEND_GENRE_BOOST -> recommend.genre_boost
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file found, or an empty string.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars always arrive as strings while YAML already yields lists.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercase environment variable names to koanf paths.
// Unmapped variables are ignored so the process environment cannot pollute config.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"request_timeout":  "server.request_timeout",
	"shutdown_timeout": "server.shutdown_timeout",

	// Data source
	"data_source":  "data.source",
	"events_path":  "data.events_path",
	"items_path":   "data.items_path",
	"duckdb_path":  "data.duckdb_path",
	"events_table": "data.events_table",
	"items_table":  "data.items_table",

	// Recommendation engine
	"recommend_behavior_weight":       "recommend.behavior_weight",
	"recommend_age_weight":            "recommend.age_weight",
	"recommend_age_scale":             "recommend.age_scale",
	"recommend_genre_boost":           "recommend.genre_boost",
	"recommend_default_top_k":         "recommend.default_top_k",
	"recommend_default_top_p":         "recommend.default_top_p",
	"recommend_default_lookback_days": "recommend.default_lookback_days",
	"recommend_default_gravity":       "recommend.default_gravity",
	"recommend_max_top_k":             "recommend.max_top_k",
	"recommend_max_top_p":             "recommend.max_top_p",
	"recommend_workers":               "recommend.workers",

	// Snapshot reload
	"reload_interval":         "reload.interval",
	"reload_min_interval":     "reload.min_interval",
	"reload_breaker_failures": "reload.breaker_failures",
	"reload_breaker_timeout":  "reload.breaker_timeout",

	// NATS
	"nats_enabled":        "nats.enabled",
	"nats_url":            "nats.url",
	"nats_reload_subject": "nats.reload_subject",
	"nats_queue_group":    "nats.queue_group",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
