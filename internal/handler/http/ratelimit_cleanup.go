package http

import (
	"context"
	"log/slog"
	"time"
)

// DefaultCleanupInterval is the default cleanup interval if not specified.
const DefaultCleanupInterval = 5 * time.Minute

// StartRateLimitCleanup periodically forgets clients that have been idle
// for longer than idle, until ctx is canceled. Run it in its own goroutine.
func StartRateLimitCleanup(ctx context.Context, limiter *RateLimiter, interval, idle time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("rate limit cleanup started",
		slog.Duration("interval", interval),
		slog.Duration("idle", idle))

	for {
		select {
		case <-ctx.Done():
			logger.Info("rate limit cleanup stopped")
			return
		case <-ticker.C:
			removed := limiter.CleanupExpired(idle)
			logger.Debug("rate limit cleanup completed",
				slog.Int("clients_removed", removed),
				slog.Int("active_clients", limiter.ActiveClients()))
		}
	}
}
