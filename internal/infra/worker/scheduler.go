// Package worker runs periodic background jobs inside the API process.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"newsdesk/internal/handler/http/respond"
)

// DefaultJobTimeout bounds a single run when Job.Timeout is zero.
const DefaultJobTimeout = 30 * time.Second

// Job is one unit of scheduled work.
type Job struct {
	Name     string
	Schedule string // standard 5-field cron or a descriptor such as "@every 1m"
	Timeout  time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs jobs on their cron schedules. Overlapping runs of the same
// job are skipped.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	metrics *Metrics
	base    context.Context
}

// NewScheduler builds a stopped scheduler. metrics may be nil.
func NewScheduler(ctx context.Context, logger *slog.Logger, metrics *Metrics) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger:  logger,
		metrics: metrics,
		base:    ctx,
	}
}

// Add registers job. It fails on an unparsable schedule.
func (s *Scheduler) Add(job Job) error {
	if job.Run == nil {
		return fmt.Errorf("worker: job %q has no Run func", job.Name)
	}
	if _, err := s.cron.AddFunc(job.Schedule, func() { s.RunOnce(job) }); err != nil {
		return fmt.Errorf("worker: schedule %q for job %q: %w", job.Schedule, job.Name, err)
	}
	s.logger.Info("job scheduled",
		slog.String("job", job.Name),
		slog.String("schedule", job.Schedule))
	return nil
}

// Start begins firing jobs in the background.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop stops the schedule and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce executes job synchronously with its timeout, logging and
// recording the outcome. main uses it to prime gauges before the first tick.
func (s *Scheduler) RunOnce(job Job) error {
	timeout := job.Timeout
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	ctx, cancel := context.WithTimeout(s.base, timeout)
	defer cancel()

	start := time.Now()
	err := job.Run(ctx)
	elapsed := time.Since(start)
	s.metrics.recordRun(job.Name, err, elapsed.Seconds())

	if err != nil {
		s.logger.Error("job failed",
			slog.String("job", job.Name),
			slog.String("error", respond.SanitizeError(err)),
			slog.Duration("duration", elapsed))
		return err
	}
	s.logger.Debug("job completed",
		slog.String("job", job.Name),
		slog.Duration("duration", elapsed))
	return nil
}
