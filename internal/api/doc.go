// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

/*
Package api exposes the recommendation engine over HTTP using the chi router.

# Endpoints

	POST /v1/popular          trending items over a lookback window
	POST /v1/recommendations  personalized items for a user
	POST /v1/admin/reload     queue a snapshot rebuild (202)
	GET  /health              liveness, always {"status":"ok"}
	GET  /health/ready        snapshot readiness and stats, 503 until the first build
	GET  /metrics             Prometheus exposition

The /v1 routes are also mounted under /api/v1.

# Errors

Failures use one body shape:

	{"error": true, "message": "...", "type": "NoRecommendationsAvailableException"}

Domain errors carry their status and type from recommend.Kind. Request
validation failures are 422 with type RequestValidationError. Anything
else is logged in full and reported as a generic 500 InternalServerError.

# Middleware

Global: request ID, real IP, panic recovery, CORS, Prometheus metrics.
API routes additionally get per-IP rate limiting, security headers, a
handler timeout and response compression.
*/
package api
