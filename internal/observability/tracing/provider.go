package tracing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config controls the tracer provider.
type Config struct {
	Enabled     bool
	SampleRatio float64 // fraction of root spans kept, 0..1
	ServiceName string
	Version     string
}

// Setup installs the global tracer provider and W3C trace-context propagation.
// When tracing is disabled only the propagator is installed and the returned
// shutdown is a no-op.
func Setup(ctx context.Context, cfg Config, logger *slog.Logger) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	name := cfg.ServiceName
	if name == "" {
		name = TracerName
	}
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", name),
		attribute.String("service.version", cfg.Version),
	))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithBatcher(NewLogExporter(logger)),
	)
	otel.SetTracerProvider(tp)
	logger.InfoContext(ctx, "tracing enabled",
		slog.String("service", name),
		slog.Float64("sample_ratio", cfg.SampleRatio))
	return tp.Shutdown, nil
}
