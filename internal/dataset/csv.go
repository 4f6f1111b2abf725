// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/trendline/internal/metrics"
	"github.com/tomtom215/trendline/internal/recommend"
)

// CSVSource reads the interaction log and catalog from CSV files with a
// header row. Column order is free; extra columns are ignored.
type CSVSource struct {
	eventsPath string
	itemsPath  string
}

// NewCSVSource creates a CSV source.
func NewCSVSource(eventsPath, itemsPath string) *CSVSource {
	return &CSVSource{eventsPath: eventsPath, itemsPath: itemsPath}
}

// Name implements Source.
func (s *CSVSource) Name() string { return KindCSV }

// LoadEvents implements Source.
func (s *CSVSource) LoadEvents(ctx context.Context) ([]recommend.Event, error) {
	start := time.Now()
	events, err := s.loadEvents(ctx)
	metrics.RecordDataLoad(KindCSV, "events", time.Since(start), err)
	return events, err
}

// LoadCatalog implements Source.
func (s *CSVSource) LoadCatalog(ctx context.Context) ([]recommend.Content, error) {
	start := time.Now()
	items, err := s.loadCatalog(ctx)
	metrics.RecordDataLoad(KindCSV, "catalog", time.Since(start), err)
	return items, err
}

func (s *CSVSource) loadEvents(ctx context.Context) ([]recommend.Event, error) {
	var events []recommend.Event
	err := readCSV(ctx, s.eventsPath, eventColumns, func(line int, col columns) error {
		ev, err := parseEventRow(col)
		if err != nil {
			return recommend.NewInvalidDataFormatError(
				fmt.Sprintf("%s line %d: %v", s.eventsPath, line, err))
		}
		events = append(events, ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *CSVSource) loadCatalog(ctx context.Context) ([]recommend.Content, error) {
	var items []recommend.Content
	err := readCSV(ctx, s.itemsPath, itemColumns, func(line int, col columns) error {
		item, err := parseItemRow(col)
		if err != nil {
			return recommend.NewInvalidDataFormatError(
				fmt.Sprintf("%s line %d: %v", s.itemsPath, line, err))
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// columns resolves a record's fields by header name.
type columns struct {
	index  map[string]int
	record []string
}

func (c columns) get(name string) string {
	return strings.TrimSpace(c.record[c.index[name]])
}

// readCSV opens path, checks the header for the required columns and calls
// fn for every data row. Line numbers are 1-based and count the header.
func readCSV(ctx context.Context, path string, required []string, fn func(line int, col columns) error) error {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return recommend.NewDataLoadError(path, "File not found", err)
		}
		return recommend.NewDataLoadError(path, "Unable to open file", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err == io.EOF {
		return recommend.NewDataLoadError(path, "File is empty", err)
	}
	if err != nil {
		return recommend.NewDataLoadError(path, "Invalid CSV format", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return recommend.NewInvalidDataFormatError(
				fmt.Sprintf("missing column '%s' in %s", name, path))
		}
	}

	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return recommend.NewDataLoadError(path, "Invalid CSV format", err)
		}
		if err := fn(line, columns{index: index, record: record}); err != nil {
			return err
		}
	}
}

func parseEventRow(col columns) (recommend.Event, error) {
	ev := recommend.Event{
		UserID:      col.get("user_id"),
		ItemID:      col.get("item_id"),
		Type:        recommend.ParseEventType(col.get("event_type")),
		ContentType: recommend.ContentType(strings.ToLower(col.get("content_type"))),
		Genre:       col.get("genre"),
	}
	if ev.UserID == "" {
		return ev, errors.New("empty user_id")
	}
	if ev.ItemID == "" {
		return ev, errors.New("empty item_id")
	}

	if raw := col.get("watch_seconds"); raw != "" {
		w, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(w) {
			return ev, fmt.Errorf("invalid watch_seconds %q", raw)
		}
		if w < 0 {
			return ev, fmt.Errorf("negative watch_seconds %q", raw)
		}
		ev.WatchSeconds = w
	}

	ts, err := ParseTimestamp(col.get("timestamp"))
	if err != nil {
		return ev, err
	}
	ev.Timestamp = ts

	age, err := parseAge(col.get("age"))
	if err != nil {
		return ev, err
	}
	ev.Age = age

	return ev, nil
}

// parseAge accepts integers and integral floats such as "27.0".
func parseAge(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid age %q", raw)
	}
	return int(f), nil
}

func parseItemRow(col columns) (recommend.Content, error) {
	item := recommend.Content{
		ItemID:      col.get("item_id"),
		Title:       col.get("title"),
		ContentType: recommend.ContentType(strings.ToLower(col.get("content_type"))),
		Genre:       col.get("genre"),
	}
	if item.ItemID == "" {
		return item, errors.New("empty item_id")
	}
	if !item.ContentType.Valid() {
		return item, fmt.Errorf("invalid content_type %q for item '%s'", item.ContentType, item.ItemID)
	}
	return item, nil
}
