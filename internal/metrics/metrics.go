// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecommendationsTotal.
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendline_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trendline_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trendline_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendline_recommendations_total",
			Help: "Total number of recommendation requests by mode and outcome",
		},
		[]string{"mode", "outcome"}, // mode: trending, personal
	)

	RecommendationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trendline_recommendation_fallbacks_total",
			Help: "Total number of personal requests served from trending",
		},
	)

	RecommendationItemsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trendline_recommendation_items_returned",
			Help:    "Number of items returned per recommendation response",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500, 1000},
		},
		[]string{"mode"},
	)

	// Snapshot Metrics
	SnapshotBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trendline_snapshot_build_duration_seconds",
			Help:    "Duration of engine snapshot builds in seconds",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 300},
		},
	)

	SnapshotReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendline_snapshot_reloads_total",
			Help: "Total number of snapshot builds by result",
		},
		[]string{"result"}, // success, failure, throttled
	)

	SnapshotUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trendline_snapshot_users",
			Help: "Number of users in the published snapshot",
		},
	)

	SnapshotItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trendline_snapshot_items",
			Help: "Number of items in the published snapshot",
		},
	)

	SnapshotEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trendline_snapshot_events",
			Help: "Number of raw events in the published snapshot",
		},
	)

	SnapshotLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trendline_snapshot_last_success_timestamp",
			Help: "Unix timestamp of the last successful snapshot build",
		},
	)

	// Data Source Metrics
	DataLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trendline_data_load_duration_seconds",
			Help:    "Duration of data source loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "dataset"}, // dataset: events, catalog
	)

	DataLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendline_data_load_errors_total",
			Help: "Total number of data source load failures",
		},
		[]string{"source", "dataset"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trendline_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendline_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendline_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Reload trigger metrics
	ReloadTriggers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendline_reload_triggers_total",
			Help: "Total number of reload triggers by origin",
		},
		[]string{"origin"}, // api, nats, interval
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation response.
// items is ignored for the error outcome.
func RecordRecommendation(mode, outcome string, items int) {
	RecommendationsTotal.WithLabelValues(mode, outcome).Inc()
	if outcome == OutcomeFallback {
		RecommendationFallbacks.Inc()
	}
	if outcome != OutcomeError {
		RecommendationItemsReturned.WithLabelValues(mode).Observe(float64(items))
	}
}

// RecordSnapshotBuild records a snapshot build attempt and, on success,
// the size of the published snapshot.
func RecordSnapshotBuild(duration time.Duration, events, users, items int, err error) {
	SnapshotBuildDuration.Observe(duration.Seconds())
	if err != nil {
		SnapshotReloads.WithLabelValues("failure").Inc()
		return
	}
	SnapshotReloads.WithLabelValues("success").Inc()
	SnapshotEvents.Set(float64(events))
	SnapshotUsers.Set(float64(users))
	SnapshotItems.Set(float64(items))
	SnapshotLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordReloadThrottled counts a trigger held back by the reload rate limiter.
func RecordReloadThrottled() {
	SnapshotReloads.WithLabelValues("throttled").Inc()
}

// RecordReloadTrigger counts a reload request by origin.
func RecordReloadTrigger(origin string) {
	ReloadTriggers.WithLabelValues(origin).Inc()
}

// RecordDataLoad records a data source load.
func RecordDataLoad(source, dataset string, duration time.Duration, err error) {
	DataLoadDuration.WithLabelValues(source, dataset).Observe(duration.Seconds())
	if err != nil {
		DataLoadErrors.WithLabelValues(source, dataset).Inc()
	}
}
