// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

/*
Command server runs the Trendline recommendation API.

	RootSupervisor ("trendline")
	├── DataSupervisor ("data-layer")
	│   ├── ReloadService          builds and republishes the snapshot
	│   └── ReloadListenerService  NATS reload requests (NATS_ENABLED=true)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService      chi router on HTTP_HOST:HTTP_PORT

Startup order:

 1. Configuration: koanf v2 layering defaults, config.yaml and environment
 2. Logging: zerolog, JSON or console
 3. Data source: CSV files or a DuckDB database, behind a circuit breaker
 4. Snapshot store, reload service and optional NATS listener
 5. HTTP server

The API answers 503 ModelNotReady until the first snapshot is published.

# Commands

	server            run the API (default)
	server reload     ask running instances to rebuild their snapshot over NATS

# Examples

	DATA_SOURCE=csv EVENTS_PATH=data/data_joined.csv ITEMS_PATH=data/items.csv ./server

	DATA_SOURCE=duckdb DUCKDB_PATH=/var/lib/trendline/events.duckdb \
	RELOAD_INTERVAL=1h NATS_ENABLED=true NATS_URL=nats://nats:4222 ./server

	NATS_URL=nats://nats:4222 ./server reload --reason "nightly export"

SIGINT and SIGTERM cancel the supervisor tree; the HTTP server drains for
SHUTDOWN_TIMEOUT before exiting.
*/
package main
