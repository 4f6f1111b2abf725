// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/trendline/internal/catalog"
	"github.com/tomtom215/trendline/internal/recommend"
)

var fixtureBase = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func fixtureEvent(user, item string, typ recommend.EventType, watch float64, ct recommend.ContentType) recommend.Event {
	return recommend.Event{
		UserID:       user,
		ItemID:       item,
		Type:         typ,
		WatchSeconds: watch,
		Timestamp:    fixtureBase,
		Age:          25,
		ContentType:  ct,
		Genre:        "drama",
	}
}

// newTestStore builds a ready store over a three-user fixture:
// trending scores are i1=8, i2=5, i3=1.
func newTestStore(t *testing.T) *recommend.Store {
	t.Helper()

	events := []recommend.Event{
		fixtureEvent("u1", "i1", recommend.EventLike, 0, recommend.ContentMovie),
		fixtureEvent("u2", "i1", recommend.EventPlay, 120, recommend.ContentMovie),
		fixtureEvent("u2", "i2", recommend.EventLike, 0, recommend.ContentSeries),
		fixtureEvent("u3", "i3", recommend.EventPlay, 10, recommend.ContentMovie),
	}
	cat := catalog.New([]recommend.Content{
		{ItemID: "i1", Title: "First", ContentType: recommend.ContentMovie, Genre: "drama"},
		{ItemID: "i2", Title: "Second", ContentType: recommend.ContentSeries, Genre: "drama"},
		{ItemID: "i3", Title: "Third", ContentType: recommend.ContentMovie, Genre: "drama"},
	})

	engine, err := recommend.NewEngine(context.Background(), recommend.DefaultConfig(), events, cat, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	store := recommend.NewStore()
	store.Swap(engine)
	return store
}

// stubReloader records reload requests.
type stubReloader struct {
	mu      sync.Mutex
	origins []string
	queued  bool
}

func (s *stubReloader) RequestReload(origin string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.origins = append(s.origins, origin)
	return s.queued
}

func (s *stubReloader) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.origins...)
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, typeName string) ErrorResponse {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, status, rec.Body.String())
	}
	var body ErrorResponse
	decodeBody(t, rec, &body)
	if !body.Error || body.Type != typeName || body.Message == "" {
		t.Errorf("error body = %+v, want type %s", body, typeName)
	}
	return body
}

func itemIDs(items []recommend.Content) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ItemID
	}
	return ids
}
