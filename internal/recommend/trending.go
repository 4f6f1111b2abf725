// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Trending ranks content by summed implicit ratings inside a time window.
// It reads an immutable event log and is safe for concurrent use.
type Trending struct {
	events  []Event
	ratings []float64
	latest  time.Time
	lookup  ContentLookup
	logger  zerolog.Logger
}

// NewTrending creates a trending aggregator over the given events.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewTrending(events []Event, lookup ContentLookup, logger zerolog.Logger) *Trending {
	ratings := make([]float64, len(events))
	var latest time.Time
	for i := range events {
		ratings[i] = trendingRating(&events[i])
		if events[i].Timestamp.After(latest) {
			latest = events[i].Timestamp
		}
	}
	return &Trending{
		events:  events,
		ratings: ratings,
		latest:  latest,
		lookup:  lookup,
		logger:  logger,
	}
}

// Latest returns the newest event timestamp in the log.
func (t *Trending) Latest() time.Time {
	return t.latest
}

// Recommend returns the top_k items by summed rating in the window
// [date - lookback_days, ...). Repeat events from the same user all count.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (t *Trending) Recommend(ctx context.Context, req TrendingRequest) (*TrendingResponse, error) {
	ranked, err := t.rank(req)
	if err != nil {
		return nil, err
	}

	logger := t.logger.With().
		Int("top_k", req.TopK).
		Int("lookback_days", req.LookbackDays).
		Float64("gravity", req.Gravity).
		Logger()

	items := make([]Content, 0, len(ranked))
	for _, si := range ranked {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, ok := t.lookup.GetContent(si.itemID)
		if !ok {
			logger.Warn().Str("item_id", si.itemID).Msg("content not found, skipping trending item")
			continue
		}
		items = append(items, content.withScore(si.score))
	}

	logger.Debug().Int("returned", len(items)).Msg("trending ranking complete")

	return &TrendingResponse{TopK: req.TopK, Items: items}, nil
}

// rank computes the scored, truncated ranking without resolving content.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (t *Trending) rank(req TrendingRequest) ([]scoredItem, error) {
	date := t.latest
	if req.Date != nil {
		date = *req.Date
	}
	cutoff := date.Add(-time.Duration(req.LookbackDays) * 24 * time.Hour)

	inWindow := 0
	allowed := contentTypeSet(req.ContentTypes)
	scores := make(map[string]float64)

	for i := range t.events {
		ev := &t.events[i]
		if ev.Timestamp.Before(cutoff) {
			continue
		}
		inWindow++
		if _, ok := allowed[ev.ContentType]; !ok {
			continue
		}
		scores[ev.ItemID] += t.ratings[i]
	}

	if inWindow == 0 {
		return nil, NewNoRecommendationsError(
			fmt.Sprintf("No data found in the last %d days", req.LookbackDays))
	}
	if len(scores) == 0 {
		types := req.ContentTypes
		if types == nil {
			types = AllContentTypes
		}
		return nil, NewNoRecommendationsError(
			fmt.Sprintf("No content found for types: %s", formatTypes(types)))
	}

	return topScored(scores, req.TopK), nil
}

// topScored sorts by descending score with ascending item id as tie-break
// and keeps the first k entries.
func topScored(scores map[string]float64, k int) []scoredItem {
	ranked := make([]scoredItem, 0, len(scores))
	for id, s := range scores {
		ranked = append(ranked, scoredItem{itemID: id, score: s})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].itemID < ranked[j].itemID
	})
	if k >= 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
