// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Personal scores unwatched items donated by a user's nearest neighbors.
// Unknown users are served by the trending collaborator instead.
type Personal struct {
	matrix     *Matrix
	similarity *Similarity
	lookup     ContentLookup
	trending   *Trending
	genreBoost float64
	fallback   DefaultsConfig
	logger     zerolog.Logger
}

// NewPersonal wires a personal recommender to its snapshot data and fallback.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPersonal(m *Matrix, s *Similarity, lookup ContentLookup, trending *Trending, cfg *Config, logger zerolog.Logger) *Personal {
	return &Personal{
		matrix:     m,
		similarity: s,
		lookup:     lookup,
		trending:   trending,
		genreBoost: cfg.Scoring.GenreBoost,
		fallback:   cfg.Defaults,
		logger:     logger,
	}
}

// Recommend ranks content for a user. fallback_used is set when the user is
// unknown and the trending ranking was returned.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (p *Personal) Recommend(ctx context.Context, req PersonalRequest) (*PersonalResponse, error) {
	logger := p.logger.With().
		Str("user_id", req.UserID).
		Int("top_k", req.TopK).
		Int("top_p", req.TopP).
		Logger()

	u, known := p.matrix.UserIndex(req.UserID)
	if !known {
		logger.Info().Msg("user not found, falling back to trending recommendations")
		return p.fallbackToTrending(ctx, req)
	}

	neighbors := p.similarity.nearest(u, req.TopP-1)
	if len(neighbors) == 0 {
		return nil, NewSimilarUsersNotFoundError(req.UserID)
	}

	watched := p.matrix.watched(u)
	favGenre := p.matrix.topGenre[u]
	allowed := contentTypeSet(req.ContentTypes)

	candidates := make(map[string]float64)
	for _, nb := range neighbors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i, rating := range p.matrix.ratings[nb.index] {
			if rating <= 0 {
				continue
			}
			if _, seen := watched[i]; seen {
				continue
			}
			itemID := p.matrix.items[i]
			content, ok := p.lookup.GetContent(itemID)
			if !ok {
				logger.Warn().Str("item_id", itemID).Msg("content not found, skipping candidate")
				continue
			}
			if _, ok := allowed[content.ContentType]; !ok {
				continue
			}

			contribution := nb.similarity * rating
			if favGenre != "" && content.Genre == favGenre {
				contribution *= p.genreBoost
			}
			candidates[itemID] += contribution
		}
	}

	if len(candidates) == 0 {
		return nil, NewNoRecommendationsError(
			fmt.Sprintf("No unwatched content found for user '%s'", req.UserID))
	}

	ranked := topScored(candidates, req.TopK)
	items := make([]Content, 0, len(ranked))
	for _, si := range ranked {
		content, ok := p.lookup.GetContent(si.itemID)
		if !ok {
			logger.Warn().Str("item_id", si.itemID).Msg("content not found, skipping ranked item")
			continue
		}
		items = append(items, content.withScore(si.score))
	}

	logger.Debug().
		Int("neighbors", len(neighbors)).
		Int("candidates", len(candidates)).
		Int("returned", len(items)).
		Msg("personal ranking complete")

	return &PersonalResponse{
		UserID:       req.UserID,
		TopK:         req.TopK,
		Items:        items,
		FallbackUsed: false,
	}, nil
}

// fallbackToTrending serves cold-start users from the trending ranking
// anchored at the latest event.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (p *Personal) fallbackToTrending(ctx context.Context, req PersonalRequest) (*PersonalResponse, error) {
	resp, err := p.trending.Recommend(ctx, TrendingRequest{
		TopK:         req.TopK,
		Date:         nil,
		ContentTypes: req.ContentTypes,
		LookbackDays: p.fallback.LookbackDays,
		Gravity:      p.fallback.Gravity,
	})
	if err != nil {
		return nil, err
	}
	return &PersonalResponse{
		UserID:       req.UserID,
		TopK:         req.TopK,
		Items:        resp.Items,
		FallbackUsed: true,
	}, nil
}
