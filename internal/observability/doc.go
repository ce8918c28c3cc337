// Package observability groups the logging, metrics, SLO and tracing
// packages used by the newsdesk API.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus HTTP, database and newsroom counters
//   - slo: availability and latency gauges derived from the HTTP histograms
//   - tracing: OpenTelemetry provider, span exporter and HTTP middleware
//
// Example usage:
//
//	import (
//	    "newsdesk/internal/observability/logging"
//	    "newsdesk/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.FromEnv()
//	    logger.Info("newsdesk api starting")
//
//	    metrics.RecordArticleView()
//	}
package observability
