// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package logging

import (
	"context"
	"strings"
	"testing"
)

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	if id := GenerateCorrelationID(); len(id) != 8 {
		t.Errorf("GenerateCorrelationID() = %q, want 8 chars", id)
	}
	a, b := GenerateRequestID(), GenerateRequestID()
	if len(a) != 36 || a == b {
		t.Errorf("GenerateRequestID() = %q, %q", a, b)
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if CorrelationIDFromContext(ctx) != "" || RequestIDFromContext(ctx) != "" {
		t.Error("empty context returned ids")
	}

	ctx = ContextWithCorrelationID(ctx, "corr1234")
	ctx = ContextWithRequestID(ctx, "req-1")
	if got := CorrelationIDFromContext(ctx); got != "corr1234" {
		t.Errorf("CorrelationIDFromContext() = %q", got)
	}
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q", got)
	}

	fresh := ContextWithNewCorrelationID(context.Background())
	if CorrelationIDFromContext(fresh) == "" {
		t.Error("ContextWithNewCorrelationID() did not set an id")
	}
}

func TestCtx(t *testing.T) {
	buf := captureGlobal(t, "info")

	ctx := ContextWithRequestID(ContextWithCorrelationID(context.Background(), "abc12345"), "req-42")
	Ctx(ctx).Info().Msg("with context")

	output := buf.String()
	for _, want := range []string{`"correlation_id":"abc12345"`, `"request_id":"req-42"`, "with context"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestCtxWithoutValues(t *testing.T) {
	buf := captureGlobal(t, "info")

	Ctx(context.Background()).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id: %s", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureGlobal(t, "info")

	l := WithComponent("recommend")
	l.Info().Msg("component")

	if !strings.Contains(buf.String(), `"component":"recommend"`) {
		t.Errorf("output missing component: %s", buf.String())
	}
}
