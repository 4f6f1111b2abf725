// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/trendline/internal/recommend"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status string `json:"status"`
}

// ReadyStatus is the body of GET /health/ready once a snapshot is published.
type ReadyStatus struct {
	Status   string          `json:"status"`
	Version  int64           `json:"snapshot_version"`
	Snapshot recommend.Stats `json:"snapshot"`
	Uptime   float64         `json:"uptime_seconds"`
}

// Health handles GET /health. It only reports that the process is serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthStatus{Status: "ok"})
}

// HealthReady handles GET /health/ready. It returns 503 ModelNotReady until
// the first snapshot has been built.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	engine, err := h.store.Current()
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ReadyStatus{
		Status:   "ready",
		Version:  h.store.Version(),
		Snapshot: engine.Stats(),
		Uptime:   time.Since(h.startTime).Seconds(),
	})
}
