// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

// Package snapshot assembles a recommendation engine from a data source.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/trendline/internal/catalog"
	"github.com/tomtom215/trendline/internal/dataset"
	"github.com/tomtom215/trendline/internal/metrics"
	"github.com/tomtom215/trendline/internal/recommend"
)

// Builder loads the event log and catalog and precomputes an engine.
// It holds no state between builds and is safe for concurrent use.
type Builder struct {
	source dataset.Source
	config *recommend.Config
	logger zerolog.Logger
}

// NewBuilder creates a builder. cfg is cloned; later changes to it have no effect.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBuilder(source dataset.Source, cfg *recommend.Config, logger zerolog.Logger) (*Builder, error) {
	if source == nil {
		return nil, errors.New("data source is required")
	}
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	return &Builder{
		source: source,
		config: cfg.Clone(),
		logger: logger.With().Str("component", "snapshot").Str("source", source.Name()).Logger(),
	}, nil
}

// Build produces a fully precomputed engine. Nothing is published; the
// caller decides whether to swap it in.
func (b *Builder) Build(ctx context.Context) (*recommend.Engine, error) {
	start := time.Now()

	engine, err := b.build(ctx)
	if err != nil {
		metrics.RecordSnapshotBuild(time.Since(start), 0, 0, 0, err)
		return nil, err
	}

	stats := engine.Stats()
	metrics.RecordSnapshotBuild(time.Since(start), stats.Events, stats.Users, stats.Items, nil)

	b.logger.Info().
		Int("events", stats.Events).
		Int("users", stats.Users).
		Int("items", stats.Items).
		Time("latest_event", stats.Latest).
		Dur("duration", time.Since(start)).
		Msg("snapshot built")

	return engine, nil
}

func (b *Builder) build(ctx context.Context) (*recommend.Engine, error) {
	events, err := b.source.LoadEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	rows, err := b.source.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	cat := catalog.New(rows)
	if dups := cat.Duplicates(); dups > 0 {
		b.logger.Warn().Int("duplicates", dups).Msg("catalog contains duplicate item ids, keeping first occurrence")
	}

	engine, err := recommend.NewEngine(ctx, b.config, events, cat, b.logger)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return engine, nil
}
