// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"math"
	"time"
)

// mapLookup is an in-memory ContentLookup for tests.
type mapLookup map[string]Content

func (m mapLookup) GetContent(itemID string) (Content, bool) {
	c, ok := m[itemID]
	return c, ok
}

// testBase is the reference "now" used by fixtures.
var testBase = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

// event builds an Event with sensible defaults for fixtures.
func event(user, item string, typ EventType, watch float64, daysAgo int) Event {
	return Event{
		UserID:       user,
		ItemID:       item,
		Type:         typ,
		WatchSeconds: watch,
		Timestamp:    testBase.Add(-time.Duration(daysAgo) * 24 * time.Hour),
		Age:          25,
		ContentType:  ContentMovie,
		Genre:        "drama",
	}
}

func content(id string, ct ContentType, genre string) Content {
	return Content{ItemID: id, Title: "Title " + id, ContentType: ct, Genre: genre}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func itemIDs(items []Content) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ItemID
	}
	return ids
}
