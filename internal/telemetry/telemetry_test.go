package telemetry

import (
	"context"
	"testing"

	"dockgrid/internal/config"
)

func TestSetup_DisabledIsNoOp(t *testing.T) {
	tr, shutdown, err := Setup(context.Background(), config.TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if tr == nil {
		t.Fatal("disabled setup must still return a usable tracer")
	}

	_, span := tr.Start(context.Background(), "drag")
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}
