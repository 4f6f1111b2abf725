// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package main

import (
	"fmt"

	"github.com/tomtom215/trendline/internal/config"
	"github.com/tomtom215/trendline/internal/events"
	"github.com/tomtom215/trendline/internal/logging"
	"github.com/tomtom215/trendline/internal/supervisor"
	"github.com/tomtom215/trendline/internal/supervisor/services"
)

// addReloadListener subscribes to NATS reload requests when enabled.
func addReloadListener(cfg *config.Config, tree *supervisor.SupervisorTree, reload *services.ReloadService) error {
	if !cfg.NATS.Enabled {
		logging.Info().Msg("NATS reload listener disabled (NATS_ENABLED=false)")
		return nil
	}

	sub, err := events.NewReloadSubscriber(
		events.DefaultSubscriberConfig(cfg.NATS.URL, cfg.NATS.ReloadSubject, cfg.NATS.QueueGroup),
		reload.RequestReload,
		logging.NewWatermillAdapter(logging.WithComponent("nats")),
	)
	if err != nil {
		return fmt.Errorf("create NATS reload listener: %w", err)
	}

	tree.AddDataService(services.NewReloadListenerService(sub))
	logging.Info().
		Str("url", cfg.NATS.URL).
		Str("subject", cfg.NATS.ReloadSubject).
		Str("queue_group", cfg.NATS.QueueGroup).
		Msg("NATS reload listener added to supervisor tree")
	return nil
}
