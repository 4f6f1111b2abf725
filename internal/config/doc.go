// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

/*
Package config provides centralized configuration management for Trendline.

Configuration is loaded with koanf in three layers, each overriding the last:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, config.yaml, config.yml, or /etc/trendline/config.yaml
 3. Environment variables listed in envMappings

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - REQUEST_TIMEOUT: Per-request handler deadline (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

Data:
  - DATA_SOURCE: csv or duckdb (default: csv)
  - EVENTS_PATH: Interaction log CSV (default: data/data_joined.csv)
  - ITEMS_PATH: Content catalog CSV (default: data/items.csv)
  - DUCKDB_PATH, EVENTS_TABLE, ITEMS_TABLE: DuckDB source settings

Recommendation engine:
  - RECOMMEND_BEHAVIOR_WEIGHT, RECOMMEND_AGE_WEIGHT: must sum to 1 (default: 0.7, 0.3)
  - RECOMMEND_AGE_SCALE (default: 10), RECOMMEND_GENRE_BOOST (default: 1.2)
  - RECOMMEND_DEFAULT_TOP_K, RECOMMEND_DEFAULT_TOP_P, RECOMMEND_DEFAULT_LOOKBACK_DAYS, RECOMMEND_DEFAULT_GRAVITY
  - RECOMMEND_MAX_TOP_K, RECOMMEND_MAX_TOP_P (default: 1000)
  - RECOMMEND_WORKERS: Similarity goroutines (default: 0 = NumCPU)

Reload:
  - RELOAD_INTERVAL: Periodic rebuild interval (default: 0 = disabled)
  - RELOAD_MIN_INTERVAL: Minimum spacing between triggered rebuilds (default: 10s)
  - RELOAD_BREAKER_FAILURES, RELOAD_BREAKER_TIMEOUT: Data source circuit breaker

NATS:
  - NATS_ENABLED (default: false), NATS_URL, NATS_RELOAD_SUBJECT, NATS_QUEUE_GROUP

Security:
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	engineCfg := cfg.ToRecommendConfig()
*/
package config
