// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/tomtom215/trendline/internal/recommend"
	"github.com/tomtom215/trendline/internal/validation"
)

func TestPopular(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestStore(t), nil)

	tests := []struct {
		name    string
		body    string
		wantIDs []string
		wantK   int
	}{
		{"empty body uses defaults", "", []string{"i1", "i2", "i3"}, 10},
		{"empty object", "{}", []string{"i1", "i2", "i3"}, 10},
		{"top_k truncates", `{"top_k": 2}`, []string{"i1", "i2"}, 2},
		{"content type filter", `{"content_types": ["series"]}`, []string{"i2"}, 10},
		{"explicit date", `{"date": "2024-07-01", "lookback_days": 5}`, []string{"i1", "i2", "i3"}, 10},
		{"gravity accepted", `{"gravity": 3.5}`, []string{"i1", "i2", "i3"}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := postJSON(t, h.Popular, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			var resp recommend.TrendingResponse
			decodeBody(t, rec, &resp)
			if got := itemIDs(resp.Items); !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("items = %v, want %v", got, tt.wantIDs)
			}
			if resp.TopK != tt.wantK {
				t.Errorf("top_k = %d, want %d", resp.TopK, tt.wantK)
			}
		})
	}
}

func TestPopular_Scores(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestStore(t), nil)
	rec := postJSON(t, h.Popular, "")

	var resp recommend.TrendingResponse
	decodeBody(t, rec, &resp)
	want := []float64{8, 5, 1}
	for i, item := range resp.Items {
		if item.Score == nil || *item.Score != want[i] {
			t.Errorf("items[%d].score = %v, want %v", i, item.Score, want[i])
		}
	}
	if resp.Items[0].Title != "First" || resp.Items[0].ContentType != recommend.ContentMovie {
		t.Errorf("items[0] = %+v, want catalog metadata", resp.Items[0])
	}
}

func TestPopular_Errors(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestStore(t), nil)

	tests := []struct {
		name     string
		body     string
		status   int
		typeName string
	}{
		{"malformed json", `{"top_k":`, http.StatusUnprocessableEntity, validation.TypeName},
		{"wrong field type", `{"top_k": "ten"}`, http.StatusUnprocessableEntity, validation.TypeName},
		{"invalid date", `{"date": "yesterday"}`, http.StatusUnprocessableEntity, validation.TypeName},
		{"zero top_k", `{"top_k": 0}`, http.StatusUnprocessableEntity, validation.TypeName},
		{"top_k over limit", `{"top_k": 1001}`, http.StatusUnprocessableEntity, validation.TypeName},
		{"negative lookback", `{"lookback_days": -1}`, http.StatusUnprocessableEntity, validation.TypeName},
		{"unknown content type", `{"content_types": ["anime"]}`, http.StatusBadRequest, "InvalidContentTypeException"},
		{"empty window", `{"date": "2025-01-01", "lookback_days": 1}`, http.StatusNotFound, "NoRecommendationsAvailableException"},
		{"empty type list", `{"content_types": []}`, http.StatusNotFound, "NoRecommendationsAvailableException"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := postJSON(t, h.Popular, tt.body)
			assertError(t, rec, tt.status, tt.typeName)
		})
	}
}

func TestPopular_ValidationDetails(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestStore(t), nil)
	rec := postJSON(t, h.Popular, `{"top_k": 0, "lookback_days": -1}`)

	body := assertError(t, rec, http.StatusUnprocessableEntity, validation.TypeName)
	if len(body.Details) != 2 {
		t.Fatalf("details = %v, want 2 entries", body.Details)
	}
	if body.Details[0]["field"] != "top_k" || body.Details[1]["field"] != "lookback_days" {
		t.Errorf("details = %v", body.Details)
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestStore(t), nil)

	tests := []struct {
		name         string
		body         string
		wantFirst    string
		wantExcluded string
		wantFallback bool
	}{
		{"known user", `{"user_id": "u1"}`, "i2", "i1", false},
		{"unknown user falls back", `{"user_id": "ghost"}`, "i1", "", true},
		{"series only", `{"user_id": "u1", "content_types": ["series"]}`, "i2", "i3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := postJSON(t, h.Recommendations, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			var resp recommend.PersonalResponse
			decodeBody(t, rec, &resp)
			if len(resp.Items) == 0 || resp.Items[0].ItemID != tt.wantFirst {
				t.Fatalf("items = %v, want first %s", itemIDs(resp.Items), tt.wantFirst)
			}
			for _, id := range itemIDs(resp.Items) {
				if id == tt.wantExcluded {
					t.Errorf("items = %v, must not contain %s", itemIDs(resp.Items), id)
				}
			}
			if resp.FallbackUsed != tt.wantFallback {
				t.Errorf("fallback_used = %v, want %v", resp.FallbackUsed, tt.wantFallback)
			}
			if resp.TopK != 10 {
				t.Errorf("top_k = %d, want default 10", resp.TopK)
			}
		})
	}
}

func TestRecommendations_Errors(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestStore(t), nil)

	tests := []struct {
		name     string
		body     string
		status   int
		typeName string
	}{
		{"missing user", `{}`, http.StatusUnprocessableEntity, validation.TypeName},
		{"empty body", ``, http.StatusUnprocessableEntity, validation.TypeName},
		{"negative top_p", `{"user_id": "u1", "top_p": -1}`, http.StatusUnprocessableEntity, validation.TypeName},
		{"top_p over limit", `{"user_id": "u1", "top_p": 5000}`, http.StatusUnprocessableEntity, validation.TypeName},
		{"unknown content type", `{"user_id": "u1", "content_types": ["podcast"]}`, http.StatusBadRequest, "InvalidContentTypeException"},
		{"no neighbors with top_p 1", `{"user_id": "u1", "top_p": 1}`, http.StatusNotFound, "SimilarUsersNotFoundException"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := postJSON(t, h.Recommendations, tt.body)
			assertError(t, rec, tt.status, tt.typeName)
		})
	}
}

func TestRecommendHandlers_NotReady(t *testing.T) {
	t.Parallel()

	h := NewHandler(recommend.NewStore(), nil)
	for name, fn := range map[string]http.HandlerFunc{
		"popular":         h.Popular,
		"recommendations": h.Recommendations,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rec := postJSON(t, fn, `{"user_id": "u1"}`)
			assertError(t, rec, http.StatusServiceUnavailable, "ModelNotReadyException")
		})
	}
}
