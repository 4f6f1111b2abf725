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

	"github.com/rs/zerolog"
)

// captureGlobal points the global logger at a buffer for the duration of a test.
func captureGlobal(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(Config{Level: level, Format: "json", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestInit(t *testing.T) {
	buf := captureGlobal(t, "debug")

	Info().Str("mode", "trending").Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected output to contain level, got: %s", output)
	}
	if !strings.Contains(output, `"mode":"trending"`) {
		t.Errorf("expected output to contain field, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{" DEBUG ", zerolog.DebugLevel},
		{"Warning", zerolog.WarnLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureGlobal(t, "warn")

	Debug().Msg("debug hidden")
	Info().Msg("info hidden")
	Warn().Msg("warn shown")
	Error().Msg("error shown")
	Err(errors.New("boom")).Msg("err shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("messages below warn were logged: %s", output)
	}
	for _, want := range []string{"warn shown", "error shown", "err shown", `"error":"boom"`} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestSetLoggerAndWith(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(prev) })

	l := With().Str("service", "reload").Logger()
	l.Info().Msg("child")

	if !strings.Contains(buf.String(), `"service":"reload"`) {
		t.Errorf("child logger missing field: %s", buf.String())
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Msg("console line")

	output := buf.String()
	if !strings.Contains(output, "console line") {
		t.Errorf("console output missing message: %s", output)
	}
	if strings.HasPrefix(output, "{") {
		t.Errorf("console output looks like JSON: %s", output)
	}
}
