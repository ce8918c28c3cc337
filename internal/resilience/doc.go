// Package resilience holds the fault tolerance helpers wrapped around the
// SQL storage backends.
//
// The package supports:
//   - Circuit breakers around database queries (gobreaker)
//   - Retry with exponential backoff and jitter for transient errors
//
// Usage Example:
//
//	cb := circuitbreaker.NewDBCircuitBreaker(sqlDB)
//	rows, err := cb.QueryContext(ctx, "SELECT id FROM articles")
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return cb.PingContext(ctx)
//	})
package resilience
