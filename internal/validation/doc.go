// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

// Package validation provides request validation using go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata and reports field names from json tags. Static bounds live in
// struct tags, while bounds that depend on configuration are checked with
// ValidateVar:
//
//	type PopularRequest struct {
//	    TopK         int `json:"top_k" validate:"gte=1"`
//	    LookbackDays int `json:"lookback_days" validate:"gte=0"`
//	}
//
//	verr := validation.Merge(
//	    validation.ValidateStruct(&req),
//	    validation.ValidateVar("top_k", req.TopK, fmt.Sprintf("lte=%d", maxTopK)),
//	)
//	if verr != nil {
//	    // respond 422 with type RequestValidationError
//	}
package validation
