// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/trendline/internal/dataset"
	"github.com/tomtom215/trendline/internal/recommend"
)

// PopularRequest is the body of POST /v1/popular.
// Omitted fields take the snapshot's configured defaults.
type PopularRequest struct {
	TopK         int                     `json:"top_k" validate:"gte=1"`
	Date         *Timestamp              `json:"date,omitempty"`
	ContentTypes []recommend.ContentType `json:"content_types,omitempty"`
	LookbackDays int                     `json:"lookback_days" validate:"gte=0"`
	Gravity      float64                 `json:"gravity"`
}

func newPopularRequest(cfg *recommend.Config) PopularRequest {
	return PopularRequest{
		TopK:         cfg.Defaults.TopK,
		LookbackDays: cfg.Defaults.LookbackDays,
		Gravity:      cfg.Defaults.Gravity,
	}
}

func (p *PopularRequest) toEngine() recommend.TrendingRequest {
	req := recommend.TrendingRequest{
		TopK:         p.TopK,
		ContentTypes: p.ContentTypes,
		LookbackDays: p.LookbackDays,
		Gravity:      p.Gravity,
	}
	if p.Date != nil {
		d := p.Date.Time
		req.Date = &d
	}
	return req
}

// RecommendationsRequest is the body of POST /v1/recommendations.
type RecommendationsRequest struct {
	UserID       string                  `json:"user_id" validate:"required"`
	TopK         int                     `json:"top_k" validate:"gte=1"`
	ContentTypes []recommend.ContentType `json:"content_types,omitempty"`
	TopP         int                     `json:"top_p" validate:"gte=0"`
}

func newRecommendationsRequest(cfg *recommend.Config) RecommendationsRequest {
	return RecommendationsRequest{
		TopK: cfg.Defaults.TopK,
		TopP: cfg.Defaults.TopP,
	}
}

func (p *RecommendationsRequest) toEngine() recommend.PersonalRequest {
	return recommend.PersonalRequest{
		UserID:       p.UserID,
		TopK:         p.TopK,
		TopP:         p.TopP,
		ContentTypes: p.ContentTypes,
	}
}

// Timestamp accepts RFC3339, "YYYY-MM-DDTHH:MM:SS", "YYYY-MM-DD HH:MM:SS"
// or "YYYY-MM-DD". Values without an offset are UTC.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := dataset.ParseTimestamp(raw)
	if err != nil {
		return fmt.Errorf("date %q is not a valid datetime", raw)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
