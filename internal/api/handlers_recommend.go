// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/trendline/internal/metrics"
	"github.com/tomtom215/trendline/internal/recommend"
	"github.com/tomtom215/trendline/internal/validation"
)

// Recommendation modes used as metric labels.
const (
	modeTrending = "trending"
	modePersonal = "personal"
)

// Popular handles POST /v1/popular.
// Returns the most interacted-with items in the lookback window.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	engine, err := h.store.Current()
	if err != nil {
		respondError(w, r, err)
		return
	}
	cfg := engine.Config()

	req := newPopularRequest(cfg)
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.Merge(
		validation.ValidateStruct(&req),
		validation.ValidateVar("top_k", req.TopK, fmt.Sprintf("lte=%d", cfg.Limits.MaxTopK)),
	); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp, err := engine.Trending(r.Context(), req.toEngine())
	if err != nil {
		metrics.RecordRecommendation(modeTrending, outcomeFor(err), 0)
		respondError(w, r, err)
		return
	}

	metrics.RecordRecommendation(modeTrending, metrics.OutcomeSuccess, len(resp.Items))
	respondJSON(w, http.StatusOK, resp)
}

// Recommendations handles POST /v1/recommendations.
// Returns personalized items for a known user, or trending items with
// fallback_used set for an unknown one.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	engine, err := h.store.Current()
	if err != nil {
		respondError(w, r, err)
		return
	}
	cfg := engine.Config()

	req := newRecommendationsRequest(cfg)
	if !decodeJSON(w, r, &req) {
		return
	}
	if verr := validation.Merge(
		validation.ValidateStruct(&req),
		validation.ValidateVar("top_k", req.TopK, fmt.Sprintf("lte=%d", cfg.Limits.MaxTopK)),
		validation.ValidateVar("top_p", req.TopP, fmt.Sprintf("lte=%d", cfg.Limits.MaxTopP)),
	); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp, err := engine.Personal(r.Context(), req.toEngine())
	if err != nil {
		metrics.RecordRecommendation(modePersonal, outcomeFor(err), 0)
		respondError(w, r, err)
		return
	}

	outcome := metrics.OutcomeSuccess
	if resp.FallbackUsed {
		outcome = metrics.OutcomeFallback
	}
	metrics.RecordRecommendation(modePersonal, outcome, len(resp.Items))
	respondJSON(w, http.StatusOK, resp)
}

// outcomeFor classifies a failed recommendation for metrics. Empty results
// are an expected outcome rather than a fault.
func outcomeFor(err error) string {
	switch recommend.KindOf(err) {
	case recommend.KindNoRecommendationsAvailable, recommend.KindSimilarUsersNotFound:
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeError
	}
}
