// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import "strings"

// EventType classifies a raw interaction event.
type EventType int

const (
	// EventOther covers any event type the service does not recognize.
	EventOther EventType = iota
	// EventPlay indicates playback started.
	EventPlay
	// EventSkip indicates the user skipped the content.
	EventSkip
	// EventLike indicates an explicit like.
	EventLike
	// EventComplete indicates the content was watched to the end.
	EventComplete
	// EventSave indicates the content was saved for later.
	EventSave
)

// longPlaySeconds is the watch time a play event must exceed to count as engaged.
const longPlaySeconds = 60

// Rating values produced by the implicit rating model.
const (
	RatingStrong  = 5.0
	RatingEngaged = 3.0
	RatingWeak    = 1.0
)

// ParseEventType maps a raw event_type column value to an EventType.
// Matching is case-insensitive; unknown values map to EventOther.
func ParseEventType(s string) EventType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "play":
		return EventPlay
	case "skip":
		return EventSkip
	case "like":
		return EventLike
	case "complete":
		return EventComplete
	case "save":
		return EventSave
	default:
		return EventOther
	}
}

// String returns the wire name for the event type.
func (t EventType) String() string {
	switch t {
	case EventPlay:
		return "play"
	case EventSkip:
		return "skip"
	case EventLike:
		return "like"
	case EventComplete:
		return "complete"
	case EventSave:
		return "save"
	default:
		return "other"
	}
}

// ImplicitRating returns the preference strength inferred from an event.
// It is total and depends only on the event type and watch time.
func ImplicitRating(t EventType, watchSeconds float64) float64 {
	switch t {
	case EventLike, EventComplete, EventSave:
		return RatingStrong
	case EventPlay:
		if watchSeconds > longPlaySeconds {
			return RatingEngaged
		}
		return RatingWeak
	default:
		return RatingWeak
	}
}

// trendingRating is the per-event weight summed by the trending aggregator.
func trendingRating(ev *Event) float64 {
	return ImplicitRating(ev.Type, ev.WatchSeconds)
}

// matrixRating is the per-event value deduplicated into the user-item matrix.
func matrixRating(ev *Event) float64 {
	return ImplicitRating(ev.Type, ev.WatchSeconds)
}
