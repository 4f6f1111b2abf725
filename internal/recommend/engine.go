// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Note: this package has no dependencies on other internal packages. Data
// arrives as a []Event plus a ContentLookup, so the loaders in dataset and
// catalog can depend on recommend without import cycles.

// Engine is an immutable snapshot of everything needed to serve requests:
// the raw log for trending, the rating matrix, and the similarity matrix.
// It is safe for concurrent use without locking.
type Engine struct {
	config     *Config
	matrix     *Matrix
	similarity *Similarity
	trending   *Trending
	personal   *Personal
	stats      Stats
	logger     zerolog.Logger
}

// NewEngine builds a snapshot from a full interaction log. Matrix and
// similarity construction run synchronously; any failure aborts the build.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(ctx context.Context, cfg *Config, events []Event, lookup ContentLookup, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if lookup == nil {
		return nil, fmt.Errorf("content lookup is required")
	}

	logger = logger.With().Str("component", "recommend").Logger()
	start := time.Now()

	matrix, err := BuildMatrix(events)
	if err != nil {
		return nil, err
	}

	sim, err := ComputeSimilarity(ctx, matrix, cfg.Similarity, cfg.workers())
	if err != nil {
		return nil, err
	}

	trending := NewTrending(events, lookup, logger.With().Str("mode", "trending").Logger())
	personal := NewPersonal(matrix, sim, lookup, trending, cfg, logger.With().Str("mode", "personal").Logger())

	e := &Engine{
		config:     cfg.Clone(),
		matrix:     matrix,
		similarity: sim,
		trending:   trending,
		personal:   personal,
		stats: Stats{
			Events:  len(events),
			Users:   matrix.NumUsers(),
			Items:   matrix.NumItems(),
			Latest:  trending.Latest(),
			BuiltAt: time.Now(),
		},
		logger: logger,
	}

	logger.Info().
		Int("events", e.stats.Events).
		Int("records", matrix.Records()).
		Int("users", e.stats.Users).
		Int("items", e.stats.Items).
		Dur("duration", time.Since(start)).
		Msg("engine snapshot built")

	return e, nil
}

// Trending returns the global trending ranking.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Trending(ctx context.Context, req TrendingRequest) (*TrendingResponse, error) {
	if err := validateContentTypes(req.ContentTypes); err != nil {
		return nil, err
	}
	return e.trending.Recommend(ctx, req)
}

// Personal returns the personalized ranking for a user, falling back to
// trending for unknown users.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Personal(ctx context.Context, req PersonalRequest) (*PersonalResponse, error) {
	if err := validateContentTypes(req.ContentTypes); err != nil {
		return nil, err
	}
	return e.personal.Recommend(ctx, req)
}

// Stats returns the snapshot summary.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Config returns a copy of the configuration the snapshot was built with.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Matrix exposes the rating matrix for inspection.
func (e *Engine) Matrix() *Matrix {
	return e.matrix
}

// Similarity exposes the similarity matrix for inspection.
func (e *Engine) Similarity() *Similarity {
	return e.similarity
}

func validateContentTypes(types []ContentType) error {
	for _, t := range types {
		if !t.Valid() {
			return NewInvalidContentTypeError(string(t))
		}
	}
	return nil
}
