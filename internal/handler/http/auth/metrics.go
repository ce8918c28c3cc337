package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authDuration tracks login handling duration by result.
	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_auth_duration_seconds",
			Help:    "Admin login duration by result",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"result"}, // result: success | invalid | rejected | error
	)

	// authzCheckDuration tracks authorization check duration.
	authzCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsdesk_authz_check_duration_seconds",
			Help:    "Authorization check duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// deniedAttempts counts guarded requests turned away, by status and method.
	deniedAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_authz_denied_total",
			Help: "Guarded admin requests rejected by status and method",
		},
		[]string{"status", "method"}, // status: unauthorized | forbidden
	)
)

// RecordAuthDuration records login duration.
func RecordAuthDuration(result string, durationSeconds float64) {
	authDuration.WithLabelValues(result).Observe(durationSeconds)
}

// RecordAuthzCheckDuration records authorization check duration.
func RecordAuthzCheckDuration(durationSeconds float64) {
	authzCheckDuration.Observe(durationSeconds)
}

// RecordDenied records a rejected admin request.
func RecordDenied(status, method string) {
	deniedAttempts.WithLabelValues(status, method).Inc()
}
