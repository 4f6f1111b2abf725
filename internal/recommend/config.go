// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"fmt"
	"math"
	"runtime"
)

// Config holds engine tuning parameters.
type Config struct {
	Similarity SimilarityConfig `json:"similarity"`
	Scoring    ScoringConfig    `json:"scoring"`
	Defaults   DefaultsConfig   `json:"defaults"`
	Limits     LimitsConfig     `json:"limits"`

	// Workers bounds the goroutines used to compute the similarity matrix.
	// Default: runtime.NumCPU().
	Workers int `json:"workers"`
}

// SimilarityConfig weights the hybrid user similarity.
type SimilarityConfig struct {
	// BehaviorWeight multiplies the cosine similarity of rating rows.
	// Default: 0.7.
	BehaviorWeight float64 `json:"behavior_weight"`

	// AgeWeight multiplies the age proximity term.
	// Default: 0.3.
	AgeWeight float64 `json:"age_weight"`

	// AgeScale is the age difference that halves age proximity.
	// Default: 10.
	AgeScale float64 `json:"age_scale"`
}

// ScoringConfig tunes candidate scoring.
type ScoringConfig struct {
	// GenreBoost multiplies contributions from the user's favorite genre.
	// Default: 1.2.
	GenreBoost float64 `json:"genre_boost"`
}

// DefaultsConfig holds request defaults applied when fields are omitted.
type DefaultsConfig struct {
	TopK         int     `json:"top_k"`
	TopP         int     `json:"top_p"`
	LookbackDays int     `json:"lookback_days"`
	Gravity      float64 `json:"gravity"`
}

// LimitsConfig bounds request parameters.
type LimitsConfig struct {
	// MaxTopK is the largest accepted top_k.
	// Default: 1000.
	MaxTopK int `json:"max_top_k"`

	// MaxTopP is the largest accepted top_p.
	// Default: 1000.
	MaxTopP int `json:"max_top_p"`
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Similarity: SimilarityConfig{
			BehaviorWeight: 0.7,
			AgeWeight:      0.3,
			AgeScale:       10.0,
		},
		Scoring: ScoringConfig{
			GenreBoost: 1.2,
		},
		Defaults: DefaultsConfig{
			TopK:         10,
			TopP:         10,
			LookbackDays: 30,
			Gravity:      1.5,
		},
		Limits: LimitsConfig{
			MaxTopK: 1000,
			MaxTopP: 1000,
		},
		Workers: runtime.NumCPU(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Similarity.BehaviorWeight < 0 || c.Similarity.AgeWeight < 0 {
		return fmt.Errorf("similarity weights must be non-negative, got %f and %f",
			c.Similarity.BehaviorWeight, c.Similarity.AgeWeight)
	}
	// Self-similarity must stay exactly 1.
	if sum := c.Similarity.BehaviorWeight + c.Similarity.AgeWeight; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("similarity.behavior_weight + similarity.age_weight must equal 1, got %f", sum)
	}
	if c.Similarity.AgeScale <= 0 {
		return fmt.Errorf("similarity.age_scale must be positive, got %f", c.Similarity.AgeScale)
	}
	if c.Scoring.GenreBoost <= 0 {
		return fmt.Errorf("scoring.genre_boost must be positive, got %f", c.Scoring.GenreBoost)
	}
	if c.Defaults.TopK < 1 {
		return fmt.Errorf("defaults.top_k must be positive, got %d", c.Defaults.TopK)
	}
	if c.Defaults.TopP < 0 {
		return fmt.Errorf("defaults.top_p must be non-negative, got %d", c.Defaults.TopP)
	}
	if c.Defaults.LookbackDays < 0 {
		return fmt.Errorf("defaults.lookback_days must be non-negative, got %d", c.Defaults.LookbackDays)
	}
	if c.Limits.MaxTopK < c.Defaults.TopK {
		return fmt.Errorf("limits.max_top_k must be >= defaults.top_k, got %d < %d", c.Limits.MaxTopK, c.Defaults.TopK)
	}
	if c.Limits.MaxTopP < c.Defaults.TopP {
		return fmt.Errorf("limits.max_top_p must be >= defaults.top_p, got %d < %d", c.Limits.MaxTopP, c.Defaults.TopP)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested sections are value types.
	clone := *c
	return &clone
}

// workers returns the effective similarity worker count.
func (c *Config) workers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
