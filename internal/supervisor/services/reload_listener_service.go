// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package services

import (
	"context"
	"fmt"
)

// ReloadListener consumes reload requests until its context ends.
// Satisfied by *events.ReloadSubscriber.
type ReloadListener interface {
	Run(ctx context.Context) error
	Close() error
}

// ReloadListenerService supervises a ReloadListener. The listener is closed
// when the service stops for good, not between restarts, since the NATS
// connection reconnects on its own.
type ReloadListenerService struct {
	listener ReloadListener
	name     string
}

// NewReloadListenerService wraps listener.
func NewReloadListenerService(listener ReloadListener) *ReloadListenerService {
	return &ReloadListenerService{
		listener: listener,
		name:     "reload-listener",
	}
}

// Serve runs the listener. An early return without cancellation is reported
// as an error so the supervisor restarts it.
func (s *ReloadListenerService) Serve(ctx context.Context) error {
	err := s.listener.Run(ctx)
	if ctx.Err() != nil {
		if closeErr := s.listener.Close(); closeErr != nil {
			return fmt.Errorf("close reload listener: %w", closeErr)
		}
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("reload listener failed: %w", err)
	}
	return fmt.Errorf("reload listener stopped unexpectedly")
}

func (s *ReloadListenerService) String() string {
	return s.name
}
