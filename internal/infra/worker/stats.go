package worker

import (
	"context"
	"fmt"
	"time"

	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/slo"
	adminUC "newsdesk/internal/usecase/admin"
)

// Job names used in logs and metrics.
const (
	StatsJobName = "stats_refresh"
	SLOJobName   = "slo_refresh"
)

// StatsSource computes the dashboard counters.
type StatsSource interface {
	Stats(ctx context.Context) (adminUC.Stats, error)
}

// StatsRefreshJob copies the dashboard counters into the newsroom gauges so
// /metrics reflects the store without a request to /api/admin/stats.
func StatsRefreshJob(schedule string, src StatsSource) Job {
	return Job{
		Name:     StatsJobName,
		Schedule: schedule,
		Timeout:  10 * time.Second,
		Run: func(ctx context.Context) error {
			st, err := src.Stats(ctx)
			if err != nil {
				return fmt.Errorf("stats refresh: %w", err)
			}
			metrics.UpdateStats(st.Snapshot())
			return nil
		},
	}
}

// SLORefreshJob recomputes the SLO gauges from the HTTP metrics.
func SLORefreshJob(schedule string, tracker *slo.Tracker) Job {
	return Job{
		Name:     SLOJobName,
		Schedule: schedule,
		Timeout:  5 * time.Second,
		Run:      tracker.Refresh,
	}
}
