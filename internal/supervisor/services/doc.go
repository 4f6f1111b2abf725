// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

/*
Package services adapts Trendline components to suture.Service.

  - HTTPServerService runs an *http.Server and drains it on shutdown.
  - ReloadService builds the recommendation snapshot at startup and rebuilds
    it on a schedule or on request, publishing each success to the store.
  - ReloadListenerService runs the NATS reload subscriber.

Every Serve returns ctx.Err() on cancellation and a wrapped error on failure
so the supervisor can decide whether to restart. String names the service in
supervisor logs.
*/
package services
