// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

// Package catalog provides the in-memory content metadata lookup used to
// decorate recommended item ids with titles, types and genres.
package catalog

import (
	"github.com/tomtom215/trendline/internal/recommend"
)

// Catalog is a read-only item_id -> Content index.
// When an id appears more than once, the first row wins.
type Catalog struct {
	items      map[string]recommend.Content
	order      []string
	duplicates int
}

// New indexes the given rows. Scores on input rows are dropped.
func New(rows []recommend.Content) *Catalog {
	c := &Catalog{
		items: make(map[string]recommend.Content, len(rows)),
		order: make([]string, 0, len(rows)),
	}
	for i := range rows {
		row := rows[i]
		if _, exists := c.items[row.ItemID]; exists {
			c.duplicates++
			continue
		}
		row.Score = nil
		c.items[row.ItemID] = row
		c.order = append(c.order, row.ItemID)
	}
	return c
}

// GetContent implements recommend.ContentLookup.
func (c *Catalog) GetContent(itemID string) (recommend.Content, bool) {
	item, ok := c.items[itemID]
	return item, ok
}

// Len returns the number of distinct items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Duplicates returns how many rows were ignored because their id was already indexed.
func (c *Catalog) Duplicates() int {
	return c.duplicates
}

// IDs returns item ids in first-seen order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
