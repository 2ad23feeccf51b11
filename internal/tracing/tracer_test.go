// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"
)

func TestNewTracerDisabledConfig(t *testing.T) {
	tracer := NewTracer(NewNoopConfig())

	ctx, span := tracer.Start(context.Background(), "tracing.TestNewTracerDisabledConfig")
	defer span.End()

	if ctx == nil {
		t.Fatal("Start returned a nil context")
	}
	if span.IsRecording() {
		t.Fatal("disabled config must produce non-recording spans")
	}
}

func TestNewNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	_, span := tracer.Start(context.Background(), "tracing.TestNewNoopTracer")
	defer span.End()

	if span.IsRecording() {
		t.Fatal("noop tracer must produce non-recording spans")
	}
}
