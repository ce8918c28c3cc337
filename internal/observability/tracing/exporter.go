package tracing

import (
	"context"
	"log/slog"
	"sync/atomic"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LogExporter writes finished spans to a slog logger at debug level.
type LogExporter struct {
	logger  *slog.Logger
	stopped atomic.Bool
}

// NewLogExporter returns an exporter writing to logger (slog.Default when nil).
func NewLogExporter(logger *slog.Logger) *LogExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogExporter{logger: logger}
}

// ExportSpans implements sdktrace.SpanExporter.
func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if e.stopped.Load() {
		return nil
	}
	for _, s := range spans {
		attrs := []any{
			slog.String("trace_id", s.SpanContext().TraceID().String()),
			slog.String("span_id", s.SpanContext().SpanID().String()),
			slog.String("name", s.Name()),
			slog.Duration("duration", s.EndTime().Sub(s.StartTime())),
			slog.String("status", s.Status().Code.String()),
		}
		if p := s.Parent(); p.IsValid() {
			attrs = append(attrs, slog.String("parent_span_id", p.SpanID().String()))
		}
		for _, kv := range s.Attributes() {
			attrs = append(attrs, slog.String("attr."+string(kv.Key), kv.Value.Emit()))
		}
		e.logger.DebugContext(ctx, "span finished", attrs...)
	}
	return nil
}

// Shutdown implements sdktrace.SpanExporter. Later exports are dropped.
func (e *LogExporter) Shutdown(context.Context) error {
	e.stopped.Store(true)
	return nil
}
