// Package telemetry provides OpenTelemetry tracing for search runs.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "trstart"
	serviceVersion = "2.0.0"
)

// Enabled reports whether an OTLP endpoint is configured in the environment.
func Enabled() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") != ""
}

// RunAttributes describes which save slot and which game state source a
// process searches with. They are attached to every exported span.
func RunAttributes(slot, source string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("trstart.slot", slot),
		attribute.String("trstart.source", source),
	}
}

// Setup installs an OTLP HTTP tracer provider when an endpoint is configured
// through the standard OTEL_* variables. Without one the global no-op
// provider stays in place. attrs are added to the resource.
//
// Returns a shutdown function that flushes pending spans.
func Setup(ctx context.Context, attrs ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	if !Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, attrs...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// newResource builds the service resource. OTEL_RESOURCE_ATTRIBUTES is
// honoured; attrs win over it.
func newResource(ctx context.Context, attrs ...attribute.KeyValue) (*resource.Resource, error) {
	base := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	}
	return resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(append(base, attrs...)...),
	)
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("trstart/" + name)
}

// NoopTracer returns a tracer that records nothing, for bulk runs.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("trstart/noop")
}
