// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

/*
Package logging provides centralized zerolog-based logging for Trendline.

# Quick Start

	logging.Init(logging.Config{
	    Level:  "info",
	    Format: "json",
	})

	logging.Info().Msg("Server starting")
	logging.Error().Err(err).Msg("Snapshot build failed")

	// With request and correlation IDs from context
	logging.Ctx(ctx).Info().Str("user_id", userID).Msg("Request processed")

# Adapters

Two libraries in the stack expect their own logger interfaces:

  - NewSlogLogger returns an slog.Logger for sutureslog supervisor events
  - NewWatermillAdapter implements watermill.LoggerAdapter for the NATS subscriber

Both write through zerolog so every line shares the same format and level.

# Configuration

Environment Variables (see internal/config):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: true/false (default: false)

Always terminate log chains with .Msg() or .Send():

	logging.Info().Str("key", "value").Msg("message")  // Correct
	logging.Info().Str("key", "value")                 // WRONG - log not emitted
*/
package logging
