// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package dataset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/trendline/internal/recommend"
)

// Source loads the interaction log and the content catalog.
// Implementations must return *recommend.Error values of kind DataLoad or
// InvalidDataFormat for failures callers can report to clients.
type Source interface {
	// LoadEvents returns the full interaction log in log order.
	LoadEvents(ctx context.Context) ([]recommend.Event, error)

	// LoadCatalog returns every catalog row in file order.
	LoadCatalog(ctx context.Context) ([]recommend.Content, error)

	// Name identifies the source in logs and metrics.
	Name() string
}

// Source kinds accepted by New.
const (
	KindCSV    = "csv"
	KindDuckDB = "duckdb"
)

// Options selects and configures a Source.
type Options struct {
	Kind        string
	EventsPath  string
	ItemsPath   string
	DuckDBPath  string
	EventsTable string
	ItemsTable  string
}

// New returns the Source named by opts.Kind.
func New(opts Options) (Source, error) {
	switch strings.ToLower(opts.Kind) {
	case "", KindCSV:
		return NewCSVSource(opts.EventsPath, opts.ItemsPath), nil
	case KindDuckDB:
		return NewDuckDBSource(opts.DuckDBPath, opts.EventsTable, opts.ItemsTable)
	default:
		return nil, fmt.Errorf("unknown data source %q (valid: csv, duckdb)", opts.Kind)
	}
}

// Event log columns, in canonical order.
var eventColumns = []string{
	"user_id", "item_id", "event_type", "watch_seconds",
	"timestamp", "age", "content_type", "genre",
}

// Catalog columns, in canonical order.
var itemColumns = []string{"item_id", "title", "content_type", "genre"}

// timestampLayouts are tried in order when parsing event timestamps and
// request dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
}

// ParseTimestamp parses the timestamp formats found in interaction logs.
// Values without a zone are interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
