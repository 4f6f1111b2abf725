// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

/*
Package supervisor runs Trendline's long-lived services under a suture v4 tree.

# Overview

	RootSupervisor ("trendline")
	├── DataSupervisor ("data-layer")
	│   ├── ReloadService            snapshot build and rebuilds
	│   └── ReloadListenerService    NATS reload requests (if NATS_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The HTTP server keeps answering from the last published snapshot while the
data layer restarts, and a failing NATS connection never takes the reload
loop down with it because each service restarts independently.

Supervisor events (service failures, restarts, backoff) are logged through
sutureslog using the zerolog-backed slog logger from internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(reloadService)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped with error")
	}

Services live in the services subpackage.
*/
package supervisor
