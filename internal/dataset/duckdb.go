// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/trendline/internal/metrics"
	"github.com/tomtom215/trendline/internal/recommend"
)

// identifierPattern matches plain or schema-qualified table names.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// DuckDBSource reads the interaction log and catalog from tables in a DuckDB
// database file. The database is opened read-only.
type DuckDBSource struct {
	db          *sql.DB
	path        string
	eventsTable string
	itemsTable  string
}

// NewDuckDBSource opens the database at path.
func NewDuckDBSource(path, eventsTable, itemsTable string) (*DuckDBSource, error) {
	if path == "" {
		return nil, fmt.Errorf("duckdb path is required")
	}
	for _, table := range []string{eventsTable, itemsTable} {
		if !identifierPattern.MatchString(table) {
			return nil, fmt.Errorf("invalid table name %q", table)
		}
	}

	// Disable auto-install/auto-load to prevent hangs in restricted network environments
	connStr := fmt.Sprintf("%s?access_mode=read_only&autoinstall_known_extensions=false&autoload_known_extensions=false", path)
	db, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, recommend.NewDataLoadError(path, "Unable to open database", err)
	}

	return &DuckDBSource{
		db:          db,
		path:        path,
		eventsTable: eventsTable,
		itemsTable:  itemsTable,
	}, nil
}

// Name implements Source.
func (s *DuckDBSource) Name() string { return KindDuckDB }

// Close releases the database handle.
func (s *DuckDBSource) Close() error {
	return s.db.Close()
}

// LoadEvents implements Source.
func (s *DuckDBSource) LoadEvents(ctx context.Context) ([]recommend.Event, error) {
	start := time.Now()
	events, err := s.loadEvents(ctx)
	metrics.RecordDataLoad(KindDuckDB, "events", time.Since(start), err)
	return events, err
}

// LoadCatalog implements Source.
func (s *DuckDBSource) LoadCatalog(ctx context.Context) ([]recommend.Content, error) {
	start := time.Now()
	items, err := s.loadCatalog(ctx)
	metrics.RecordDataLoad(KindDuckDB, "catalog", time.Since(start), err)
	return items, err
}

func (s *DuckDBSource) loadEvents(ctx context.Context) ([]recommend.Event, error) {
	query := fmt.Sprintf(`
		SELECT
			CAST(user_id AS VARCHAR),
			CAST(item_id AS VARCHAR),
			CAST(event_type AS VARCHAR),
			COALESCE(CAST(watch_seconds AS DOUBLE), 0),
			CAST("timestamp" AS TIMESTAMP),
			CAST(age AS INTEGER),
			CAST(content_type AS VARCHAR),
			CAST(genre AS VARCHAR)
		FROM %s`, quoteIdentifier(s.eventsTable))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, s.queryError(s.eventsTable, err)
	}
	defer rows.Close() //nolint:errcheck // rows.Err is checked below

	var events []recommend.Event
	for rows.Next() {
		var (
			ev          recommend.Event
			eventType   string
			contentType string
			ts          sql.NullTime
			age         sql.NullInt64
		)
		if err := rows.Scan(&ev.UserID, &ev.ItemID, &eventType, &ev.WatchSeconds,
			&ts, &age, &contentType, &ev.Genre); err != nil {
			return nil, recommend.NewInvalidDataFormatError(
				fmt.Sprintf("%s row %d: %v", s.eventsTable, len(events)+1, err))
		}
		if !ts.Valid || !age.Valid {
			return nil, recommend.NewInvalidDataFormatError(
				fmt.Sprintf("%s row %d: timestamp and age are required", s.eventsTable, len(events)+1))
		}
		if ev.WatchSeconds < 0 {
			return nil, recommend.NewInvalidDataFormatError(
				fmt.Sprintf("%s row %d: negative watch_seconds", s.eventsTable, len(events)+1))
		}
		ev.Type = recommend.ParseEventType(eventType)
		ev.ContentType = recommend.ContentType(strings.ToLower(contentType))
		ev.Timestamp = ts.Time.UTC()
		ev.Age = int(age.Int64)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, s.queryError(s.eventsTable, err)
	}
	return events, nil
}

func (s *DuckDBSource) loadCatalog(ctx context.Context) ([]recommend.Content, error) {
	query := fmt.Sprintf(`
		SELECT
			CAST(item_id AS VARCHAR),
			CAST(title AS VARCHAR),
			CAST(content_type AS VARCHAR),
			CAST(genre AS VARCHAR)
		FROM %s`, quoteIdentifier(s.itemsTable))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, s.queryError(s.itemsTable, err)
	}
	defer rows.Close() //nolint:errcheck // rows.Err is checked below

	var items []recommend.Content
	for rows.Next() {
		var (
			item        recommend.Content
			contentType string
		)
		if err := rows.Scan(&item.ItemID, &item.Title, &contentType, &item.Genre); err != nil {
			return nil, recommend.NewInvalidDataFormatError(
				fmt.Sprintf("%s row %d: %v", s.itemsTable, len(items)+1, err))
		}
		item.ContentType = recommend.ContentType(strings.ToLower(contentType))
		if !item.ContentType.Valid() {
			return nil, recommend.NewInvalidDataFormatError(
				fmt.Sprintf("%s row %d: invalid content_type %q", s.itemsTable, len(items)+1, contentType))
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, s.queryError(s.itemsTable, err)
	}
	return items, nil
}

func (s *DuckDBSource) queryError(table string, err error) error {
	return recommend.NewDataLoadError(s.path+"#"+table, "Query failed", err)
}

// quoteIdentifier quotes each part of a validated identifier.
func quoteIdentifier(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = `"` + p + `"`
	}
	return strings.Join(parts, ".")
}
