// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

/*
Package dataset loads the interaction log and the content catalog.

Two backends are provided:

  - CSVSource reads data_joined.csv style files with a header row
  - DuckDBSource reads the same columns from tables in a DuckDB file

Both report failures with the recommend error taxonomy: a missing, empty or
unparsable file is a DataLoad error and a structurally invalid row is an
InvalidDataFormat error.

BreakerSource wraps either backend with a sony/gobreaker circuit breaker so
that periodic reloads back off from a failing store.

Event log columns:

	user_id, item_id, event_type, watch_seconds, timestamp, age, content_type, genre

Catalog columns:

	item_id, title, content_type, genre
*/
package dataset
