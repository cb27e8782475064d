// Package otel wires opt-in OpenTelemetry tracing for the netrun commands.
package otel

import (
	"context"

	"github.com/louisbranch/netrun/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Settings controls whether spans are exported.
type Settings struct {
	Enabled  bool   `env:"NETRUN_OTEL_ENABLED"  envDefault:"true"`
	Endpoint string `env:"NETRUN_OTEL_ENDPOINT"`
}

// Active reports whether tracing should be exported.
func (s Settings) Active() bool {
	return s.Enabled && s.Endpoint != ""
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when NETRUN_OTEL_ENDPOINT is empty or
// NETRUN_OTEL_ENABLED is "false", Setup returns a no-op shutdown function and
// no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return noop, err
	}
	return SetupWith(ctx, serviceName, settings)
}

// SetupWith is Setup with explicit settings.
func SetupWith(ctx context.Context, serviceName string, settings Settings) (shutdown func(context.Context) error, err error) {
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(settings.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer from the global provider. Without Setup the
// global provider is a no-op.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

func noop(context.Context) error { return nil }
