// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/trendline/internal/dataset"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateReload(); err != nil {
		return err
	}

	if err := c.validateNATS(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", c.Server.RequestTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateData() error {
	switch c.Data.Source {
	case dataset.KindCSV:
		if c.Data.EventsPath == "" || c.Data.ItemsPath == "" {
			return fmt.Errorf("EVENTS_PATH and ITEMS_PATH are required when DATA_SOURCE=csv")
		}
	case dataset.KindDuckDB:
		if c.Data.DuckDBPath == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DATA_SOURCE=duckdb")
		}
		if c.Data.EventsTable == "" || c.Data.ItemsTable == "" {
			return fmt.Errorf("EVENTS_TABLE and ITEMS_TABLE are required when DATA_SOURCE=duckdb")
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be one of: %s, %s (got %q)", dataset.KindCSV, dataset.KindDuckDB, c.Data.Source)
	}
	return nil
}

// validateRecommend delegates to the engine's own validation so both layers
// agree on what a usable configuration is.
func (c *Config) validateRecommend() error {
	if err := c.ToRecommendConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}

func (c *Config) validateReload() error {
	if c.Reload.Interval < 0 {
		return fmt.Errorf("RELOAD_INTERVAL must be non-negative, got %v", c.Reload.Interval)
	}
	if c.Reload.MinInterval < 0 {
		return fmt.Errorf("RELOAD_MIN_INTERVAL must be non-negative, got %v", c.Reload.MinInterval)
	}
	if c.Reload.BreakerFailures == 0 {
		return fmt.Errorf("RELOAD_BREAKER_FAILURES must be at least 1")
	}
	if c.Reload.BreakerTimeout <= 0 {
		return fmt.Errorf("RELOAD_BREAKER_TIMEOUT must be positive, got %v", c.Reload.BreakerTimeout)
	}
	return nil
}

func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}
	u, err := url.Parse(c.NATS.URL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("NATS_URL is invalid: %q", c.NATS.URL)
	}
	if u.Scheme != "nats" && u.Scheme != "tls" {
		return fmt.Errorf("NATS_URL must use nats:// or tls:// scheme, got %q", u.Scheme)
	}
	if strings.TrimSpace(c.NATS.ReloadSubject) == "" {
		return fmt.Errorf("NATS_RELOAD_SUBJECT is required when NATS_ENABLED=true")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console (got %q)", c.Logging.Format)
	}
	return nil
}
