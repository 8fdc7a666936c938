// Package jobs contains the nightly maintenance tasks that move lifecycle
// records past their end dates and notify the members affected.
package jobs

import (
	"context"
	"database/sql"
	"time"

	"gympoint-backend/internal/clock"
	"gympoint-backend/internal/events"
	"gympoint-backend/internal/logger"
	"gympoint-backend/internal/service"
)

type JobRunner struct {
	db        *sql.DB
	emailSvc  service.EmailService
	publisher events.Publisher
	clk       clock.Clock
}

func NewJobRunner(db *sql.DB, emailSvc service.EmailService, publisher events.Publisher, clk clock.Clock) *JobRunner {
	return &JobRunner{
		db:        db,
		emailSvc:  emailSvc,
		publisher: publisher,
		clk:       clk,
	}
}

// RunAllNightlyJobs executes every job in sequence. A panic or error in one
// job never prevents the next from running.
func (j *JobRunner) RunAllNightlyJobs(ctx context.Context) {
	logger.Info("Starting nightly jobs")
	start := time.Now()

	j.runWithRecovery(ctx, "mark_overdue_rentals", j.MarkOverdueRentals)
	j.runWithRecovery(ctx, "expire_inscriptions", j.ExpireInscriptions)
	j.runWithRecovery(ctx, "send_overdue_notices", j.SendOverdueNotices)

	logger.Info("Nightly jobs completed", "duration", time.Since(start))
}

func (j *JobRunner) runWithRecovery(ctx context.Context, name string, job func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", name, "panic", r)
		}
	}()

	start := time.Now()
	if err := job(ctx); err != nil {
		logger.Error("Job failed", "job", name, "error", err)
		return
	}
	logger.Info("Job completed", "job", name, "duration", time.Since(start))
}
