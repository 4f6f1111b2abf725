// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/trendline/internal/events"
	"github.com/tomtom215/trendline/internal/logging"
)

func newReloadCmd() *cobra.Command {
	var reason, requestedBy string

	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Ask running instances to rebuild their snapshot over NATS",
		Long: "Publishes a reload request on NATS_RELOAD_SUBJECT at NATS_URL. " +
			"Every instance listening with the same queue group rebuilds once.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if requestedBy == "" {
				requestedBy, _ = os.Hostname()
			}

			pub, err := events.NewReloadPublisher(cfg.NATS.URL, cfg.NATS.ReloadSubject,
				logging.NewWatermillAdapter(logging.WithComponent("nats")))
			if err != nil {
				return err
			}
			defer func() {
				if err := pub.Close(); err != nil {
					logging.Warn().Err(err).Msg("Error closing NATS publisher")
				}
			}()

			if err := pub.Publish(events.ReloadRequest{Reason: reason, RequestedBy: requestedBy}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reload requested on %s\n", cfg.NATS.ReloadSubject)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded in instance logs")
	cmd.Flags().StringVar(&requestedBy, "requested-by", "", "requester recorded in instance logs (default: hostname)")
	return cmd
}
