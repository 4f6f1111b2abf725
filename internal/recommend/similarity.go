// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Similarity is the square user-by-user hybrid similarity matrix,
// indexed identically to the rows of the Matrix it was built from.
type Similarity struct {
	values [][]float64
}

// neighbor is a candidate donor user.
type neighbor struct {
	index      int
	similarity float64
}

// ComputeSimilarity blends behavioral cosine similarity with age proximity:
//
//	S[u,v] = bw*cos(M[u], M[v]) + aw / (1 + |age_u - age_v| / scale)
//
// Rows are split across workers goroutines. A zero-norm row is reported as
// InvalidDataFormat rather than producing NaN.
func ComputeSimilarity(ctx context.Context, m *Matrix, cfg SimilarityConfig, workers int) (*Similarity, error) {
	n := m.NumUsers()

	norms := make([]float64, n)
	for u := 0; u < n; u++ {
		var sq float64
		for _, r := range m.ratings[u] {
			sq += r * r
		}
		norms[u] = math.Sqrt(sq)
		if norms[u] == 0 {
			return nil, NewInvalidDataFormatError(
				fmt.Sprintf("user '%s' has an all-zero rating row", m.users[u]))
		}
	}

	values := make([][]float64, n)
	backing := make([]float64, n*n)
	for u := range values {
		values[u] = backing[u*n : (u+1)*n : (u+1)*n]
	}

	if workers < 1 {
		workers = 1
	}
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for u := start; u < end; u++ {
				if ctx.Err() != nil {
					return
				}
				// Each worker owns whole rows, so no locking is needed.
				for v := 0; v < n; v++ {
					if u == v {
						values[u][v] = 1.0
						continue
					}
					values[u][v] = hybridSimilarity(m, norms, cfg, u, v)
				}
			}
		}(start, end)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Similarity{values: values}, nil
}

// hybridSimilarity computes S[u,v] for u != v. The dot product is accumulated
// in column order so S[u,v] and S[v,u] are bit-identical.
func hybridSimilarity(m *Matrix, norms []float64, cfg SimilarityConfig, u, v int) float64 {
	a, b := m.ratings[u], m.ratings[v]
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	cos := dot / (norms[u] * norms[v])
	if cos > 1 {
		cos = 1
	}

	ageDiff := math.Abs(float64(m.ages[u] - m.ages[v]))
	ageSim := 1 / (1 + ageDiff/cfg.AgeScale)

	return cfg.BehaviorWeight*cos + cfg.AgeWeight*ageSim
}

// Size returns the number of users the matrix covers.
func (s *Similarity) Size() int {
	return len(s.values)
}

// At returns S[u, v].
func (s *Similarity) At(u, v int) float64 {
	return s.values[u][v]
}

// nearest returns the k most similar users to u, excluding u itself.
// Ties are broken by ascending user index.
func (s *Similarity) nearest(u, k int) []neighbor {
	if k <= 0 {
		return nil
	}
	row := s.values[u]
	candidates := make([]neighbor, 0, len(row)-1)
	for v, sim := range row {
		if v == u {
			continue
		}
		candidates = append(candidates, neighbor{index: v, similarity: sim})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].similarity != candidates[j].similarity {
			return candidates[i].similarity > candidates[j].similarity
		}
		return candidates[i].index < candidates[j].index
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
