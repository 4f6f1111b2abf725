// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import "testing"

func TestImplicitRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   EventType
		watch float64
		want  float64
	}{
		{"like", EventLike, 0, RatingStrong},
		{"complete", EventComplete, 5, RatingStrong},
		{"save", EventSave, 0, RatingStrong},
		{"long play", EventPlay, 61, RatingEngaged},
		{"play at threshold", EventPlay, 60, RatingWeak},
		{"short play", EventPlay, 10, RatingWeak},
		{"skip", EventSkip, 500, RatingWeak},
		{"other", EventOther, 500, RatingWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ImplicitRating(tt.typ, tt.watch); got != tt.want {
				t.Errorf("ImplicitRating(%v, %v) = %v, want %v", tt.typ, tt.watch, got, tt.want)
			}
		})
	}
}

func TestParseEventType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want EventType
	}{
		{"play", EventPlay},
		{"PLAY", EventPlay},
		{" like ", EventLike},
		{"Complete", EventComplete},
		{"save", EventSave},
		{"skip", EventSkip},
		{"share", EventOther},
		{"", EventOther},
	}

	for _, tt := range tests {
		if got := ParseEventType(tt.in); got != tt.want {
			t.Errorf("ParseEventType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	t.Parallel()

	for _, typ := range []EventType{EventPlay, EventSkip, EventLike, EventComplete, EventSave} {
		if got := ParseEventType(typ.String()); got != typ {
			t.Errorf("ParseEventType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}
	if EventOther.String() != "other" {
		t.Errorf("EventOther.String() = %q, want other", EventOther.String())
	}
}
