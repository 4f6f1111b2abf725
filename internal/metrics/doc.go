// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - trendline_api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - trendline_api_request_duration_seconds: Request latency (histogram)
  - trendline_api_active_requests: In-flight requests (gauge)

Recommendation Metrics:
  - trendline_recommendations_total: Responses by mode and outcome (counter)
  - trendline_recommendation_fallbacks_total: Cold-start fallbacks (counter)
  - trendline_recommendation_items_returned: Items per response (histogram)

Snapshot Metrics:
  - trendline_snapshot_build_duration_seconds (histogram)
  - trendline_snapshot_reloads_total: Labels: result (success, failure, throttled)
  - trendline_snapshot_users, trendline_snapshot_items, trendline_snapshot_events (gauges)
  - trendline_snapshot_last_success_timestamp (gauge)

Data Source Metrics:
  - trendline_data_load_duration_seconds: Labels: source, dataset
  - trendline_data_load_errors_total: Labels: source, dataset

Circuit Breaker Metrics:
  - trendline_circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - trendline_circuit_breaker_requests_total: Labels: name, result
  - trendline_circuit_breaker_state_transitions_total

# Usage

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest(r.Method, "/v1/popular", "200", time.Since(start))
*/
package metrics
