// Package tracing provides OpenTelemetry tracing for the HTTP layer and the
// use cases.
//
// Setup installs an SDK tracer provider as the global provider; until it is
// called, GetTracer hands out the no-op tracer. Finished spans are written
// through slog at debug level, so traces are visible without an external
// collector.
//
// Example usage:
//
//	shutdown, err := tracing.Setup(ctx, tracing.Config{Enabled: true, SampleRatio: 1}, logger)
//	if err != nil { ... }
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.GetTracer().Start(ctx, "article.Create")
//	defer span.End()
package tracing
