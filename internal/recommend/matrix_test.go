// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"reflect"
	"testing"
)

func TestBuildMatrix_Empty(t *testing.T) {
	t.Parallel()

	_, err := BuildMatrix(nil)
	if !IsKind(err, KindInvalidDataFormat) {
		t.Fatalf("BuildMatrix(nil) error = %v, want InvalidDataFormat", err)
	}
}

func TestBuildMatrix_DedupKeepsMax(t *testing.T) {
	t.Parallel()

	events := []Event{
		event("u1", "i1", EventPlay, 10, 3),
		event("u1", "i1", EventLike, 0, 2),
		event("u1", "i1", EventPlay, 90, 1),
		event("u1", "i2", EventPlay, 90, 1),
	}

	m, err := BuildMatrix(events)
	if err != nil {
		t.Fatalf("BuildMatrix() error = %v", err)
	}

	if got := m.Rating("u1", "i1"); got != RatingStrong {
		t.Errorf("Rating(u1, i1) = %v, want %v", got, RatingStrong)
	}
	if got := m.Rating("u1", "i2"); got != RatingEngaged {
		t.Errorf("Rating(u1, i2) = %v, want %v", got, RatingEngaged)
	}
	if got := m.Records(); got != 2 {
		t.Errorf("Records() = %d, want 2", got)
	}
}

func TestBuildMatrix_SortedIndexes(t *testing.T) {
	t.Parallel()

	events := []Event{
		event("zed", "i3", EventLike, 0, 1),
		event("amy", "i1", EventLike, 0, 1),
		event("kim", "i2", EventLike, 0, 1),
	}

	m, err := BuildMatrix(events)
	if err != nil {
		t.Fatalf("BuildMatrix() error = %v", err)
	}

	if want := []string{"amy", "kim", "zed"}; !reflect.DeepEqual(m.users, want) {
		t.Errorf("users = %v, want %v", m.users, want)
	}
	if want := []string{"i1", "i2", "i3"}; !reflect.DeepEqual(m.items, want) {
		t.Errorf("items = %v, want %v", m.items, want)
	}
	if m.NumUsers() != 3 || m.NumItems() != 3 {
		t.Errorf("shape = %dx%d, want 3x3", m.NumUsers(), m.NumItems())
	}
	if got := m.Rating("amy", "i3"); got != 0 {
		t.Errorf("Rating(amy, i3) = %v, want 0", got)
	}
	if got := m.Rating("nobody", "i1"); got != 0 {
		t.Errorf("Rating(nobody, i1) = %v, want 0", got)
	}
}

func TestBuildMatrix_DriftingKeysKeepMaxCell(t *testing.T) {
	t.Parallel()

	first := event("u1", "i1", EventPlay, 90, 2)
	second := event("u1", "i1", EventSave, 0, 1)
	second.Genre = "comedy"

	m, err := BuildMatrix([]Event{first, second})
	if err != nil {
		t.Fatalf("BuildMatrix() error = %v", err)
	}
	if got := m.Rating("u1", "i1"); got != RatingStrong {
		t.Errorf("Rating(u1, i1) = %v, want %v", got, RatingStrong)
	}
	if got := m.Records(); got != 2 {
		t.Errorf("Records() = %d, want 2", got)
	}
}

func TestBuildMatrix_AgeFirstObserved(t *testing.T) {
	t.Parallel()

	a := event("u1", "i1", EventLike, 0, 3)
	a.Age = 31
	b := event("u1", "i2", EventLike, 0, 1)
	b.Age = 32

	m, err := BuildMatrix([]Event{a, b})
	if err != nil {
		t.Fatalf("BuildMatrix() error = %v", err)
	}
	age, ok := m.Age("u1")
	if !ok || age != 31 {
		t.Errorf("Age(u1) = %d, %v; want 31, true", age, ok)
	}
	if _, ok := m.Age("missing"); ok {
		t.Error("Age(missing) ok = true, want false")
	}
}

func TestBuildMatrix_TopGenre(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		events []Event
		want   string
	}{
		{
			name: "highest sum wins",
			events: []Event{
				withGenre(event("u1", "i1", EventLike, 0, 1), "drama"),
				withGenre(event("u1", "i2", EventPlay, 10, 1), "comedy"),
				withGenre(event("u1", "i3", EventPlay, 10, 1), "comedy"),
			},
			want: "drama",
		},
		{
			name: "tie goes to smallest genre",
			events: []Event{
				withGenre(event("u1", "i1", EventLike, 0, 1), "thriller"),
				withGenre(event("u1", "i2", EventLike, 0, 1), "action"),
			},
			want: "action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := BuildMatrix(tt.events)
			if err != nil {
				t.Fatalf("BuildMatrix() error = %v", err)
			}
			got, ok := m.TopGenre("u1")
			if !ok || got != tt.want {
				t.Errorf("TopGenre(u1) = %q, %v; want %q, true", got, ok, tt.want)
			}
		})
	}
}

func TestMatrixWatched(t *testing.T) {
	t.Parallel()

	m, err := BuildMatrix([]Event{
		event("u1", "i1", EventLike, 0, 1),
		event("u2", "i2", EventLike, 0, 1),
	})
	if err != nil {
		t.Fatalf("BuildMatrix() error = %v", err)
	}
	u, _ := m.UserIndex("u1")
	watched := m.watched(u)
	if len(watched) != 1 {
		t.Fatalf("watched(u1) size = %d, want 1", len(watched))
	}
	if _, ok := watched[m.itemIndex["i1"]]; !ok {
		t.Error("watched(u1) missing i1")
	}
}

func withGenre(ev Event, genre string) Event {
	ev.Genre = genre
	return ev
}
