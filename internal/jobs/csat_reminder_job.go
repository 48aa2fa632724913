package jobs

import (
	"context"
	"log/slog"

	"ordertrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CsatReminderJob periodically sweeps for completed orders whose customers
// never rated the delivery and re-sends the feedback link.
type CsatReminderJob struct {
	handler commands.RemindCsatCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCsatReminderJob creates a job that runs the reminder sweep every minute.
// The eligibility delay lives inside the handler; the job only drives the clock.
func NewCsatReminderJob(handler commands.RemindCsatCommandHandler, logger *slog.Logger) *CsatReminderJob {
	return &CsatReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "csat_reminder_job"),
	}
}

// Start begins the reminder sweep on a per-minute schedule.
func (j *CsatReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRemindCsatCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Csat reminder sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Csat reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder sweep.
func (j *CsatReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Csat reminder job stopped")
}
