package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/netrun/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("NETRUN_OTEL_ENDPOINT", "")
	t.Setenv("NETRUN_OTEL_ENABLED", "true")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("NETRUN_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("NETRUN_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsInvalidEnabledFlag(t *testing.T) {
	t.Setenv("NETRUN_OTEL_ENABLED", "sometimes")

	if _, err := otel.Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected error for invalid NETRUN_OTEL_ENABLED")
	}
}

func TestSetupWith_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Use a non-routable address so no actual export happens.
	settings := otel.Settings{Enabled: true, Endpoint: "http://192.0.2.1:4318"}

	shutdown, err := otel.SetupWith(context.Background(), "test-service", settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Shutdown should flush cleanly even though the endpoint is unreachable.
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSettingsActive(t *testing.T) {
	tests := []struct {
		name     string
		settings otel.Settings
		want     bool
	}{
		{name: "default", settings: otel.Settings{Enabled: true}, want: false},
		{name: "endpoint", settings: otel.Settings{Enabled: true, Endpoint: "http://collector:4318"}, want: true},
		{name: "disabled", settings: otel.Settings{Endpoint: "http://collector:4318"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.Active(); got != tt.want {
				t.Fatalf("active = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := otel.Tracer("test").Start(context.Background(), "noop")
	span.End()
}

func TestSetup_NoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv("NETRUN_OTEL_ENDPOINT", "")
	t.Setenv("NETRUN_OTEL_ENABLED", "true")

	shutdown, err := otel.Setup(context.Background(), "noop-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
