// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/trendline/internal/logging"
	"github.com/tomtom215/trendline/internal/metrics"
	"github.com/tomtom215/trendline/internal/recommend"
)

// BreakerConfig tunes the circuit breaker guarding a Source.
type BreakerConfig struct {
	// ConsecutiveFailures opens the circuit. Default: 3.
	ConsecutiveFailures uint32

	// Timeout is how long the circuit stays open before a trial load. Default: 1m.
	Timeout time.Duration
}

// BreakerSource wraps a Source with circuit breaker protection so a broken
// data store is not hammered by periodic reloads.
//
// The breaker uses real time for its open timeout; tests that need to
// observe recovery should use a short Timeout.
type BreakerSource struct {
	source Source
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewBreakerSource wraps source.
func NewBreakerSource(source Source, cfg BreakerConfig) *BreakerSource {
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	cbName := "datasource-" + source.Name()

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
			if shouldTrip {
				logging.Warn().
					Str("breaker", cbName).
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// Context cancellation is the caller giving up, not the source failing.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerSource{source: source, cb: cb, name: cbName}
}

// Name implements Source.
func (b *BreakerSource) Name() string { return b.source.Name() }

// State returns the current breaker state as a string.
func (b *BreakerSource) State() string {
	return stateToString(b.cb.State())
}

// LoadEvents implements Source.
func (b *BreakerSource) LoadEvents(ctx context.Context) ([]recommend.Event, error) {
	return castResult[[]recommend.Event](b.execute(func() (any, error) {
		return b.source.LoadEvents(ctx)
	}))
}

// LoadCatalog implements Source.
func (b *BreakerSource) LoadCatalog(ctx context.Context) ([]recommend.Content, error) {
	return castResult[[]recommend.Content](b.execute(func() (any, error) {
		return b.source.LoadCatalog(ctx)
	}))
}

// execute runs fn through the breaker. Rejections are reported as DataLoad
// errors so callers see a single error taxonomy.
func (b *BreakerSource) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Load rejected")
			return nil, recommend.NewDataLoadError(b.source.Name(), "Data source circuit is open", err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return result, nil
}

func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
