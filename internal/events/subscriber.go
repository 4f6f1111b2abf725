// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
)

// SubscriberConfig configures the reload subscriber.
type SubscriberConfig struct {
	URL           string
	Subject       string
	QueueGroup    string
	MaxReconnects int
	ReconnectWait time.Duration
	CloseTimeout  time.Duration
}

// DefaultSubscriberConfig returns reconnect settings suited to a long-lived
// service; URL, Subject and QueueGroup come from configuration.
func DefaultSubscriberConfig(url, subject, queueGroup string) SubscriberConfig {
	return SubscriberConfig{
		URL:           url,
		Subject:       subject,
		QueueGroup:    queueGroup,
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
		CloseTimeout:  5 * time.Second,
	}
}

// ReloadSubscriber listens for reload requests and forwards them to a trigger.
type ReloadSubscriber struct {
	subscriber message.Subscriber
	config     SubscriberConfig
	trigger    TriggerFunc
	logger     watermill.LoggerAdapter
}

// NewReloadSubscriber connects to NATS. The connection retries in the
// background, so an unreachable server does not fail construction.
func NewReloadSubscriber(cfg SubscriberConfig, trigger TriggerFunc, logger watermill.LoggerAdapter) (*ReloadSubscriber, error) {
	if trigger == nil {
		return nil, errors.New("reload trigger is required")
	}
	if cfg.Subject == "" {
		return nil, errors.New("reload subject is required")
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	natsOpts := []natsgo.Option{
		natsgo.Name("trendline-reload-subscriber"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(nc *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("Reload subscriber disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("Reload subscriber reconnected", watermill.LogFields{
				"url": nc.ConnectedUrl(),
			})
		}),
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              cfg.URL,
		QueueGroupPrefix: cfg.QueueGroup,
		SubscribersCount: 1,
		CloseTimeout:     cfg.CloseTimeout,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			Disabled: true,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create reload subscriber: %w", err)
	}

	return &ReloadSubscriber{
		subscriber: sub,
		config:     cfg,
		trigger:    trigger,
		logger:     logger,
	}, nil
}

// Run consumes reload requests until ctx is canceled or the subscriber is closed.
func (s *ReloadSubscriber) Run(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.config.Subject)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", s.config.Subject, err)
	}

	s.logger.Info("Listening for reload requests", watermill.LogFields{
		"subject":     s.config.Subject,
		"queue_group": s.config.QueueGroup,
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			s.handle(msg)
		}
	}
}

// handle always acks: core NATS has no redelivery and a malformed body is
// still a request to reload.
func (s *ReloadSubscriber) handle(msg *message.Message) {
	fields := watermill.LogFields{"message_uuid": msg.UUID}

	req, err := UnmarshalReloadRequest(msg.Payload)
	if err != nil {
		s.logger.Error("Ignoring unreadable reload payload", err, fields)
	} else {
		fields["reason"] = req.Reason
		fields["requested_by"] = req.RequestedBy
	}

	fields["queued"] = s.trigger(OriginNATS)
	s.logger.Info("Reload requested over NATS", fields)
	msg.Ack()
}

// Close shuts down the subscriber and its connection.
func (s *ReloadSubscriber) Close() error {
	return s.subscriber.Close()
}
