// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/trendline/internal/logging"
	"github.com/tomtom215/trendline/internal/recommend"
	"github.com/tomtom215/trendline/internal/validation"
)

// maxBodyBytes bounds request bodies. Recommendation requests are tiny.
const maxBodyBytes = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with an ETag over the encoded body
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError maps err to a status and error body. Engine errors keep their
// kind's status, type and message. Anything else is logged and hidden behind
// a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var re *recommend.Error
	if !errors.As(err, &re) {
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("Unexpected error handling request")
		respondErrorBody(w, http.StatusInternalServerError, TypeInternalServerError, internalErrorMessage, nil)
		return
	}

	status := re.Kind.HTTPStatus()
	event := logging.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error().AnErr("cause", re.Err)
	}
	event.
		Str("type", re.Kind.TypeName()).
		Int("status", status).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Msg(sanitizeLogValue(re.Message))

	respondErrorBody(w, status, re.Kind.TypeName(), re.Message, nil)
}

// respondValidationError reports request validation failures as 422.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	logging.Ctx(r.Context()).Debug().
		Str("path", sanitizeLogValue(r.URL.Path)).
		Str("error", sanitizeLogValue(verr.Error())).
		Msg("Request validation failed")
	respondErrorBody(w, http.StatusUnprocessableEntity, validation.TypeName, verr.Error(), verr.Details())
}

func respondErrorBody(w http.ResponseWriter, status int, typeName, message string, details []map[string]interface{}) {
	respondJSON(w, status, &ErrorResponse{
		Error:   true,
		Message: message,
		Type:    typeName,
		Details: details,
	})
}

// decodeJSON reads the request body into v, leaving v untouched for an empty
// body so that pre-filled defaults apply. It writes a 422 and returns false
// on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondErrorBody(w, http.StatusRequestEntityTooLarge, validation.TypeName,
				fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit), nil)
			return false
		}
		respondErrorBody(w, http.StatusBadRequest, validation.TypeName, "Failed to read request body", nil)
		return false
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}

	if err := json.Unmarshal(body, v); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Invalid request body")
		respondErrorBody(w, http.StatusUnprocessableEntity, validation.TypeName,
			"Invalid request body: "+err.Error(), nil)
		return false
	}
	return true
}
