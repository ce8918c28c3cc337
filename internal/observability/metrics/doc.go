// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Newsroom metrics (articles, views, likes, comment moderation, logins)
//   - Storage query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "newsdesk/internal/observability/metrics"
//
//	func approve(ctx context.Context, id string) {
//	    start := time.Now()
//	    // ... approve the comment ...
//	    metrics.RecordCommentModerated("approve")
//	    metrics.RecordDBQuery("comments.approve", time.Since(start))
//	}
package metrics
