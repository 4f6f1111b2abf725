// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

// Package events carries snapshot reload requests over NATS using Watermill.
//
// A data pipeline that has finished writing a new interaction export
// publishes a ReloadRequest on the configured subject; every Trendline
// instance subscribed with the same queue group receives it once per
// group and asks its reload service to rebuild the snapshot.
//
// Core NATS is used rather than JetStream. Reload requests are idempotent
// and coalesced by the receiver, so a request lost while an instance is
// down is covered by the rebuild that instance performs on startup.
//
// Payloads are JSON. An empty or unreadable payload still triggers a
// reload; the fields are informational and only appear in logs.
package events
