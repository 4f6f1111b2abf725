// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/trendline/internal/metrics"
	"github.com/tomtom215/trendline/internal/recommend"
)

// Reload origins that are not client requests.
const (
	OriginStartup  = "startup"
	OriginSchedule = "schedule"
)

// SnapshotBuilder produces a fully precomputed engine.
// Satisfied by *snapshot.Builder.
type SnapshotBuilder interface {
	Build(ctx context.Context) (*recommend.Engine, error)
}

// ReloadServiceConfig holds configuration for the reload service.
type ReloadServiceConfig struct {
	// Interval between scheduled rebuilds. Zero disables the schedule.
	Interval time.Duration

	// MinInterval is the minimum spacing between requested rebuilds.
	// Requests arriving sooner wait; zero means no limit.
	MinInterval time.Duration

	// BuildTimeout bounds a single build. Default: 10m.
	BuildTimeout time.Duration
}

// ReloadService owns the snapshot lifecycle: an initial build, scheduled
// rebuilds and rebuilds requested through RequestReload. Only successful
// builds are published; a failure leaves the current snapshot serving.
type ReloadService struct {
	builder  SnapshotBuilder
	store    *recommend.Store
	config   ReloadServiceConfig
	limiter  *rate.Limiter
	triggers chan string
	logger   zerolog.Logger
	name     string
}

// NewReloadService creates the service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloadService(builder SnapshotBuilder, store *recommend.Store, cfg ReloadServiceConfig, logger zerolog.Logger) *ReloadService {
	if cfg.BuildTimeout <= 0 {
		cfg.BuildTimeout = 10 * time.Minute
	}
	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}
	return &ReloadService{
		builder:  builder,
		store:    store,
		config:   cfg,
		limiter:  rate.NewLimiter(limit, 1),
		triggers: make(chan string, 1),
		logger:   logger.With().Str("service", "reload").Logger(),
		name:     "reload-service",
	}
}

// RequestReload asks for a rebuild. It never blocks: a request made while
// another is pending merges into it and false is returned.
func (s *ReloadService) RequestReload(origin string) bool {
	metrics.RecordReloadTrigger(origin)
	select {
	case s.triggers <- origin:
		return true
	default:
		s.logger.Debug().Str("origin", origin).Msg("reload already pending, request merged")
		return false
	}
}

// Serve builds the first snapshot and then waits for the schedule or
// requests. Without any snapshot a failed build is returned so the
// supervisor retries with backoff; once a snapshot exists failures are
// only logged.
func (s *ReloadService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Dur("min_interval", s.config.MinInterval).
		Msg("reload service starting")

	if err := s.reload(ctx, OriginStartup); err != nil && !s.store.Ready() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("initial snapshot build: %w", err)
	}

	var tick <-chan time.Time
	if s.config.Interval > 0 {
		ticker := time.NewTicker(s.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("reload service shutting down")
			return ctx.Err()

		case <-tick:
			_ = s.reload(ctx, OriginSchedule)

		case origin := <-s.triggers:
			if err := s.throttle(ctx); err != nil {
				return err
			}
			_ = s.reload(ctx, origin)
		}
	}
}

// throttle waits until the limiter admits another requested rebuild.
func (s *ReloadService) throttle(ctx context.Context) error {
	if s.limiter.Allow() {
		return nil
	}
	metrics.RecordReloadThrottled()
	s.logger.Info().Dur("min_interval", s.config.MinInterval).Msg("reload throttled, waiting")
	if err := s.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("reload limiter: %w", err)
	}
	return nil
}

func (s *ReloadService) reload(ctx context.Context, origin string) error {
	buildCtx, cancel := context.WithTimeout(ctx, s.config.BuildTimeout)
	defer cancel()

	start := time.Now()
	engine, err := s.builder.Build(buildCtx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("origin", origin).
			Bool("serving_previous", s.store.Ready()).
			Msg("snapshot build failed")
		return err
	}

	previous := s.store.Swap(engine)
	s.logger.Info().
		Str("origin", origin).
		Int64("version", s.store.Version()).
		Bool("replaced", previous != nil).
		Dur("duration", time.Since(start)).
		Msg("snapshot published")
	return nil
}

func (s *ReloadService) String() string {
	return s.name
}
