// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package events

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
)

// ReloadPublisher sends reload requests. It is used by the reload CLI
// command and by pipelines embedding this package.
type ReloadPublisher struct {
	publisher message.Publisher
	subject   string
}

// NewReloadPublisher connects to url and publishes on subject.
func NewReloadPublisher(url, subject string, logger watermill.LoggerAdapter) (*ReloadPublisher, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL: url,
		NatsOptions: []natsgo.Option{
			natsgo.Name("trendline-reload-publisher"),
			natsgo.Timeout(5 * time.Second),
		},
		Marshaler: &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			Disabled: true,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create reload publisher: %w", err)
	}

	return &ReloadPublisher{publisher: pub, subject: subject}, nil
}

// Publish sends req. A zero RequestedAt is set to the current time.
func (p *ReloadPublisher) Publish(req ReloadRequest) error {
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}
	payload, err := req.Marshal()
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.publisher.Publish(p.subject, msg); err != nil {
		return fmt.Errorf("publish reload request: %w", err)
	}
	return nil
}

// Close flushes and closes the connection.
func (p *ReloadPublisher) Close() error {
	return p.publisher.Close()
}
