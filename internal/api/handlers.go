// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

import (
	"time"

	"github.com/tomtom215/trendline/internal/recommend"
)

// Reloader queues snapshot rebuilds. RequestReload reports whether a new
// rebuild was queued; false means one is already pending.
type Reloader interface {
	RequestReload(origin string) bool
}

// Handler serves all API endpoints from the engine snapshot currently
// published in the store.
type Handler struct {
	store     *recommend.Store
	reloader  Reloader
	startTime time.Time
}

// NewHandler creates a handler. reloader may be nil, in which case the admin
// reload endpoint reports 503.
func NewHandler(store *recommend.Store, reloader Reloader) *Handler {
	return &Handler{
		store:     store,
		reloader:  reloader,
		startTime: time.Now(),
	}
}
