// Package scheduler runs the nightly jobs on cron schedules.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"gympoint-backend/internal/config"
	"gympoint-backend/internal/jobs"
	"gympoint-backend/internal/logger"
)

type Scheduler struct {
	cron   *cron.Cron
	runner *jobs.JobRunner
	cfg    config.SchedulerConfig
}

func New(runner *jobs.JobRunner, cfg config.SchedulerConfig) *Scheduler {
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(time.UTC),
	)
	return &Scheduler{cron: c, runner: runner, cfg: cfg}
}

// Start registers the jobs and begins the cron loop. Schedules use the
// six-field format with a leading seconds column, evaluated in UTC.
func (s *Scheduler) Start() error {
	entries := []struct {
		name string
		spec string
		job  func(context.Context) error
	}{
		{"mark_overdue_rentals", s.cfg.MarkOverdueRentals, s.runner.MarkOverdueRentals},
		{"expire_inscriptions", s.cfg.ExpireInscriptions, s.runner.ExpireInscriptions},
		{"send_overdue_notices", s.cfg.SendOverdueNotices, s.runner.SendOverdueNotices},
	}

	for _, e := range entries {
		entry := e
		_, err := s.cron.AddFunc(entry.spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()

			if err := entry.job(ctx); err != nil {
				logger.Error("Scheduled job failed", "job", entry.name, "error", err)
			}
		})
		if err != nil {
			return err
		}
		logger.Info("Registered scheduled job", "job", entry.name, "schedule", entry.spec)
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
