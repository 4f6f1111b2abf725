// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"sync/atomic"
)

// Store publishes the current engine snapshot. Readers always see either the
// old or the new snapshot in full; a swap never exposes a partial build.
type Store struct {
	current atomic.Pointer[Engine]
	version atomic.Int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Current returns the published snapshot, or ModelNotReady when none exists.
func (s *Store) Current() (*Engine, error) {
	e := s.current.Load()
	if e == nil {
		return nil, NewModelNotReadyError("")
	}
	return e, nil
}

// Swap publishes e and returns the previous snapshot (nil on first publish).
func (s *Store) Swap(e *Engine) *Engine {
	prev := s.current.Swap(e)
	s.version.Add(1)
	return prev
}

// Ready reports whether a snapshot has been published.
func (s *Store) Ready() bool {
	return s.current.Load() != nil
}

// Version returns the number of swaps performed.
func (s *Store) Version() int64 {
	return s.version.Load()
}
