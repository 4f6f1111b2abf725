// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
)

func TestWatermillAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewWatermillAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))

	child := adapter.With(watermill.LogFields{"topic": "trendline.reload"})
	child.Info("subscribed", watermill.LogFields{"queue": "trendline"})
	child.Error("handler failed", errors.New("nack"), nil)
	child.Debug("debug line", nil)

	output := buf.String()
	if strings.Contains(output, "debug line") {
		t.Errorf("debug line logged at info level: %s", output)
	}
	for _, want := range []string{
		`"topic":"trendline.reload"`,
		`"queue":"trendline"`,
		`"message":"subscribed"`,
		`"error":"nack"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}
