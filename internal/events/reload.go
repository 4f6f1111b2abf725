// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package events

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// OriginNATS identifies reloads requested over the message bus.
const OriginNATS = "nats"

// ReloadRequest is the optional body of a reload message.
type ReloadRequest struct {
	Reason      string    `json:"reason,omitempty"`
	RequestedBy string    `json:"requested_by,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// TriggerFunc asks for a snapshot rebuild. It reports whether a new rebuild
// was queued, as opposed to merged into one already pending.
type TriggerFunc func(origin string) bool

// Marshal encodes the request as JSON.
func (r *ReloadRequest) Marshal() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal reload request: %w", err)
	}
	return data, nil
}

// UnmarshalReloadRequest decodes a payload. An empty payload yields a zero request.
func UnmarshalReloadRequest(payload []byte) (*ReloadRequest, error) {
	req := &ReloadRequest{}
	if len(payload) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(payload, req); err != nil {
		return nil, fmt.Errorf("unmarshal reload request: %w", err)
	}
	return req, nil
}
