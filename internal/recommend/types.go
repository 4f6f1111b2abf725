// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"time"
)

// ContentType is the catalog classification of a content item.
type ContentType string

const (
	ContentSeries     ContentType = "series"
	ContentMovie      ContentType = "movie"
	ContentMicrodrama ContentType = "microdrama"
	ContentTV         ContentType = "tv"
)

// AllContentTypes lists every valid content type in canonical order.
// Requests that omit content_types filter against this list.
var AllContentTypes = []ContentType{ContentSeries, ContentMovie, ContentMicrodrama, ContentTV}

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentSeries, ContentMovie, ContentMicrodrama, ContentTV:
		return true
	default:
		return false
	}
}

// Event is a single raw interaction from the log.
type Event struct {
	// UserID identifies the user who produced the event.
	UserID string `json:"user_id"`

	// ItemID identifies the content item.
	ItemID string `json:"item_id"`

	// Type is the parsed event type.
	Type EventType `json:"event_type"`

	// WatchSeconds is the watch time attached to the event (>= 0).
	WatchSeconds float64 `json:"watch_seconds"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Age is the user's age at the time of the event.
	Age int `json:"age"`

	// ContentType is the content type of the item as recorded in the log.
	ContentType ContentType `json:"content_type"`

	// Genre is the genre of the item as recorded in the log.
	Genre string `json:"genre"`
}

// Content is display metadata for a content item.
// Score is only set on items returned by the engine.
type Content struct {
	ItemID      string      `json:"item_id"`
	Title       string      `json:"title"`
	ContentType ContentType `json:"content_type"`
	Genre       string      `json:"genre"`
	Score       *float64    `json:"score"`
}

// withScore returns a copy of c carrying the given score.
func (c Content) withScore(score float64) Content {
	c.Score = &score
	return c
}

// ContentLookup resolves item identifiers to display metadata.
// A miss is routine and must not be treated as fatal.
type ContentLookup interface {
	GetContent(itemID string) (Content, bool)
}

// TrendingRequest parameterizes a global trending ranking.
type TrendingRequest struct {
	// TopK is the maximum number of items to return.
	TopK int

	// Date anchors the lookback window. Nil means the latest event timestamp.
	Date *time.Time

	// ContentTypes restricts the ranking to these types. Nil means all types.
	ContentTypes []ContentType

	// LookbackDays is the window length ending at Date.
	LookbackDays int

	// Gravity is accepted for configuration symmetry and does not affect scoring.
	Gravity float64
}

// TrendingResponse is the result of a trending ranking.
type TrendingResponse struct {
	TopK  int       `json:"top_k"`
	Items []Content `json:"items"`
}

// PersonalRequest parameterizes a personalized ranking.
type PersonalRequest struct {
	// UserID is the requesting user.
	UserID string

	// TopK is the maximum number of items to return.
	TopK int

	// TopP bounds the neighborhood: TopP-1 neighbors are used.
	TopP int

	// ContentTypes restricts the ranking to these types. Nil means all types.
	ContentTypes []ContentType
}

// PersonalResponse is the result of a personalized ranking.
type PersonalResponse struct {
	UserID       string    `json:"user_id"`
	TopK         int       `json:"top_k"`
	Items        []Content `json:"items"`
	FallbackUsed bool      `json:"fallback_used"`
}

// Stats summarizes an engine snapshot.
type Stats struct {
	Events  int       `json:"events"`
	Users   int       `json:"users"`
	Items   int       `json:"items"`
	Latest  time.Time `json:"latest_event"`
	BuiltAt time.Time `json:"built_at"`
}

// scoredItem is an item id with its accumulated score.
type scoredItem struct {
	itemID string
	score  float64
}

// contentTypeSet builds a lookup set, expanding nil to every content type.
func contentTypeSet(types []ContentType) map[ContentType]struct{} {
	if types == nil {
		types = AllContentTypes
	}
	set := make(map[ContentType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}
