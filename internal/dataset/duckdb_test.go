// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package dataset

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/trendline/internal/recommend"
)

// seedDuckDB creates a database file with events and items tables and
// closes it so the source can reopen it read-only.
func seedDuckDB(t *testing.T, statements ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trendline.duckdb")
	db, err := sql.Open("duckdb", path)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	defer db.Close() //nolint:errcheck // test cleanup

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return path
}

var duckdbSchema = []string{
	`CREATE TABLE events (
		user_id VARCHAR, item_id VARCHAR, event_type VARCHAR, watch_seconds DOUBLE,
		"timestamp" TIMESTAMP, age INTEGER, content_type VARCHAR, genre VARCHAR)`,
	`CREATE TABLE items (item_id VARCHAR, title VARCHAR, content_type VARCHAR, genre VARCHAR)`,
}

func TestDuckDBSource_Load(t *testing.T) {
	path := seedDuckDB(t, append(duckdbSchema,
		`INSERT INTO events VALUES
			('u1', 'i1', 'like', 0, TIMESTAMP '2024-06-01 10:00:00', 25, 'movie', 'drama'),
			('u2', 'i2', 'play', 90, TIMESTAMP '2024-06-02 11:00:00', 31, 'SERIES', 'comedy'),
			('u2', 'i1', 'skip', NULL, TIMESTAMP '2024-06-03 12:00:00', 31, 'movie', 'drama')`,
		`INSERT INTO items VALUES
			('i1', 'First Movie', 'movie', 'drama'),
			('i2', 'Some Series', 'series', 'comedy')`,
	)...)

	src, err := NewDuckDBSource(path, "events", "items")
	if err != nil {
		t.Fatalf("NewDuckDBSource() error = %v", err)
	}
	defer src.Close() //nolint:errcheck // test cleanup

	events, err := src.LoadEvents(context.Background())
	if err != nil {
		t.Fatalf("LoadEvents() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("LoadEvents() returned %d events, want 3", len(events))
	}

	byKey := make(map[string]recommend.Event, len(events))
	for _, ev := range events {
		byKey[ev.UserID+"/"+ev.ItemID] = ev
	}
	play := byKey["u2/i2"]
	if play.Type != recommend.EventPlay || play.WatchSeconds != 90 || play.ContentType != recommend.ContentSeries {
		t.Errorf("u2/i2 = %+v", play)
	}
	if !play.Timestamp.Equal(time.Date(2024, 6, 2, 11, 0, 0, 0, time.UTC)) {
		t.Errorf("u2/i2 timestamp = %v", play.Timestamp)
	}
	if skip := byKey["u2/i1"]; skip.WatchSeconds != 0 || skip.Age != 31 {
		t.Errorf("u2/i1 = %+v, want NULL watch_seconds as 0", skip)
	}

	items, err := src.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("LoadCatalog() returned %d items, want 2", len(items))
	}
}

func TestDuckDBSource_MissingTable(t *testing.T) {
	path := seedDuckDB(t, duckdbSchema[1])

	src, err := NewDuckDBSource(path, "events", "items")
	if err != nil {
		t.Fatalf("NewDuckDBSource() error = %v", err)
	}
	defer src.Close() //nolint:errcheck // test cleanup

	_, err = src.LoadEvents(context.Background())
	if !recommend.IsKind(err, recommend.KindDataLoad) {
		t.Fatalf("LoadEvents() error = %v, want DataLoad", err)
	}
}

func TestDuckDBSource_InvalidCatalogType(t *testing.T) {
	path := seedDuckDB(t, append(duckdbSchema,
		`INSERT INTO items VALUES ('i1', 'X', 'anime', 'drama')`)...)

	src, err := NewDuckDBSource(path, "events", "items")
	if err != nil {
		t.Fatalf("NewDuckDBSource() error = %v", err)
	}
	defer src.Close() //nolint:errcheck // test cleanup

	_, err = src.LoadCatalog(context.Background())
	if !recommend.IsKind(err, recommend.KindInvalidDataFormat) {
		t.Fatalf("LoadCatalog() error = %v, want InvalidDataFormat", err)
	}
}

func TestNewDuckDBSource_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		events string
		items  string
	}{
		{"empty path", "", "events", "items"},
		{"injection", "x.duckdb", "events; DROP TABLE items", "items"},
		{"empty table", "x.duckdb", "events", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewDuckDBSource(tt.path, tt.events, tt.items); err == nil {
				t.Error("NewDuckDBSource() error = nil")
			}
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	t.Parallel()

	if got := quoteIdentifier("main.events"); got != `"main"."events"` {
		t.Errorf("quoteIdentifier() = %s", got)
	}
}
