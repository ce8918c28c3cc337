package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks scheduled job executions, labelled by job name.
//
//   - newsdesk_worker_job_runs_total{job,status}: status is success or failure
//   - newsdesk_worker_job_duration_seconds{job}
//   - newsdesk_worker_job_last_success_timestamp{job}
type Metrics struct {
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	lastSuccess *prometheus.GaugeVec
}

// NewMetrics registers the job metrics with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "newsdesk_worker_job_runs_total",
			Help: "Total number of scheduled job runs by status (success/failure)",
		}, []string{"job", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "newsdesk_worker_job_duration_seconds",
			Help:    "Duration of scheduled job runs in seconds",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 5, 30},
		}, []string{"job"}),
		lastSuccess: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "newsdesk_worker_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful run",
		}, []string{"job"}),
	}
}

func (m *Metrics) recordRun(job string, err error, seconds float64) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.runs.WithLabelValues(job, status).Inc()
	m.duration.WithLabelValues(job).Observe(seconds)
	if err == nil {
		m.lastSuccess.WithLabelValues(job).SetToCurrentTime()
	}
}
