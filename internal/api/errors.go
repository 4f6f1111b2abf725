// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

// Error type names for failures that do not come from the engine.
const (
	TypeInternalServerError = "InternalServerError"
	TypeRateLimitExceeded   = "RateLimitExceeded"
	TypeNotFound            = "NotFound"
	TypeMethodNotAllowed    = "MethodNotAllowed"
	TypeReloadUnavailable   = "ReloadUnavailable"
)

// internalErrorMessage is the only detail clients see for unexpected failures.
const internalErrorMessage = "An unexpected error occurred"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   bool                     `json:"error"`
	Message string                   `json:"message"`
	Type    string                   `json:"type"`
	Details []map[string]interface{} `json:"details,omitempty"`
}
