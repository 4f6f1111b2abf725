// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func similarityFixture(t *testing.T) *Matrix {
	t.Helper()

	var events []Event
	for u := 0; u < 12; u++ {
		for i := 0; i < 8; i++ {
			if (u+i)%3 == 0 {
				continue
			}
			ev := event(fmt.Sprintf("u%02d", u), fmt.Sprintf("i%02d", i), EventType(1+(u*i)%5), float64(u*10), u%5)
			ev.Age = 18 + u*3
			events = append(events, ev)
		}
	}
	m, err := BuildMatrix(events)
	if err != nil {
		t.Fatalf("BuildMatrix() error = %v", err)
	}
	return m
}

func TestComputeSimilarity_SymmetricWithUnitDiagonal(t *testing.T) {
	t.Parallel()

	m := similarityFixture(t)
	s, err := ComputeSimilarity(context.Background(), m, DefaultConfig().Similarity, 3)
	if err != nil {
		t.Fatalf("ComputeSimilarity() error = %v", err)
	}
	if s.Size() != m.NumUsers() {
		t.Fatalf("Size() = %d, want %d", s.Size(), m.NumUsers())
	}

	for u := 0; u < s.Size(); u++ {
		if s.At(u, u) != 1.0 {
			t.Errorf("S[%d][%d] = %v, want 1.0", u, u, s.At(u, u))
		}
		for v := 0; v < s.Size(); v++ {
			if s.At(u, v) != s.At(v, u) {
				t.Errorf("S[%d][%d] = %v != S[%d][%d] = %v", u, v, s.At(u, v), v, u, s.At(v, u))
			}
			if s.At(u, v) < 0 || s.At(u, v) > 1+1e-12 {
				t.Errorf("S[%d][%d] = %v out of [0, 1]", u, v, s.At(u, v))
			}
		}
	}
}

func TestComputeSimilarity_WorkerCountInvariant(t *testing.T) {
	t.Parallel()

	m := similarityFixture(t)
	cfg := DefaultConfig().Similarity

	base, err := ComputeSimilarity(context.Background(), m, cfg, 1)
	if err != nil {
		t.Fatalf("ComputeSimilarity(workers=1) error = %v", err)
	}

	for _, workers := range []int{0, 2, 5, 64} {
		s, err := ComputeSimilarity(context.Background(), m, cfg, workers)
		if err != nil {
			t.Fatalf("ComputeSimilarity(workers=%d) error = %v", workers, err)
		}
		for u := 0; u < s.Size(); u++ {
			for v := 0; v < s.Size(); v++ {
				if s.At(u, v) != base.At(u, v) {
					t.Fatalf("workers=%d: S[%d][%d] = %v, want %v", workers, u, v, s.At(u, v), base.At(u, v))
				}
			}
		}
	}
}

func TestComputeSimilarity_HybridValue(t *testing.T) {
	t.Parallel()

	a := event("a", "i1", EventLike, 0, 1)
	a.Age = 20
	b := event("b", "i2", EventLike, 0, 1)
	b.Age = 30
	c := event("c", "i1", EventLike, 0, 1)
	c.Age = 20

	m, err := BuildMatrix([]Event{a, b, c})
	if err != nil {
		t.Fatalf("BuildMatrix() error = %v", err)
	}
	s, err := ComputeSimilarity(context.Background(), m, DefaultConfig().Similarity, 2)
	if err != nil {
		t.Fatalf("ComputeSimilarity() error = %v", err)
	}

	// Disjoint items, ages 10 apart: 0.7*0 + 0.3/(1+1).
	if got := s.At(0, 1); !approxEqual(got, 0.15) {
		t.Errorf("S[a][b] = %v, want 0.15", got)
	}
	// Identical rows and ages.
	if got := s.At(0, 2); !approxEqual(got, 1.0) {
		t.Errorf("S[a][c] = %v, want 1.0", got)
	}
}

func TestComputeSimilarity_ZeroRow(t *testing.T) {
	t.Parallel()

	m := &Matrix{
		users:   []string{"u1", "u2"},
		items:   []string{"i1"},
		ratings: [][]float64{{5}, {0}},
		ages:    []int{20, 30},
	}

	_, err := ComputeSimilarity(context.Background(), m, DefaultConfig().Similarity, 1)
	if !IsKind(err, KindInvalidDataFormat) {
		t.Fatalf("ComputeSimilarity() error = %v, want InvalidDataFormat", err)
	}
}

func TestComputeSimilarity_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ComputeSimilarity(ctx, similarityFixture(t), DefaultConfig().Similarity, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ComputeSimilarity() error = %v, want context.Canceled", err)
	}
}

func TestSimilarityNearest(t *testing.T) {
	t.Parallel()

	s := &Similarity{values: [][]float64{
		{1, 0.5, 0.9, 0.5},
		{0.5, 1, 0.2, 0.1},
		{0.9, 0.2, 1, 0.3},
		{0.5, 0.1, 0.3, 1},
	}}

	tests := []struct {
		name string
		k    int
		want []int
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"one", 1, []int{2}},
		{"tie by index", 3, []int{2, 1, 3}},
		{"more than available", 10, []int{2, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := s.nearest(0, tt.k)
			if len(got) != len(tt.want) {
				t.Fatalf("nearest(0, %d) = %v, want indexes %v", tt.k, got, tt.want)
			}
			for i := range got {
				if got[i].index != tt.want[i] {
					t.Errorf("nearest(0, %d)[%d] = %d, want %d", tt.k, i, got[i].index, tt.want[i])
				}
				if got[i].index == 0 {
					t.Error("nearest() returned the user itself")
				}
			}
		})
	}
}
