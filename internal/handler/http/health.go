// Package http provides the HTTP middleware, health probes and metrics
// endpoint shared by the resource handlers in its sub-packages.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/respond"
)

// Pinger is a storage backend that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports storage health. DB and BreakerState are only set
// for the SQL backends; Limiter only when login throttling is enabled.
type HealthHandler struct {
	Store        Pinger
	Backend      string
	DB           *sql.DB
	BreakerState func() string
	Limiter      *RateLimiter
	Version      string
}

// ServeHTTP performs health checks and returns the application health status.
// Returns 200 OK if healthy or degraded, or 503 Service Unavailable if any check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	checks["storage"] = h.checkStorage(ctx)
	if h.Limiter != nil {
		checks["login_rate_limiter"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]any{"active_clients": h.Limiter.ActiveClients()},
		}
	}

	status := "healthy"
	statusCode := http.StatusOK
	for _, c := range checks {
		switch c.Status {
		case "unhealthy":
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		case "degraded":
			if status == "healthy" {
				status = "degraded"
			}
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// checkStorage pings the store and, for SQL backends, reports pool statistics.
func (h *HealthHandler) checkStorage(ctx context.Context) CheckStatus {
	if h.Store == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	if err := h.Store.Ping(ctx); err != nil {
		return CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err)}
	}

	details := map[string]any{"backend": h.Backend}
	if h.BreakerState != nil {
		details["circuit_breaker"] = h.BreakerState()
	}
	if h.DB == nil {
		return CheckStatus{Status: "healthy", Details: details}
	}

	stats := h.DB.Stats()
	details["max_open_connections"] = stats.MaxOpenConnections
	details["open_connections"] = stats.OpenConnections
	details["in_use"] = stats.InUse
	details["idle"] = stats.Idle
	details["wait_count"] = stats.WaitCount
	details["wait_duration_ms"] = stats.WaitDuration.Milliseconds()

	// Guard against zero division when MaxOpenConnections is 0 (unlimited)
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// ReadyHandler handles readiness probe requests.
// It checks that the storage backend answers a ping.
type ReadyHandler struct {
	Store Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Store == nil {
		http.Error(w, "storage not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.Store.Ping(ctx); err != nil {
		http.Error(w, "storage not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Default().Warn("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler handles liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 OK while the process can respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Default().Warn("alive: failed to write response", slog.Any("error", err))
	}
}
