package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
)

// AbandonedOrderJob removes orders stuck in awaiting-payment longer than the
// abandonment timeout. Runs every fifteen minutes; abandoned checkouts never
// entered the paid lifecycle, so deleting them is safe.
type AbandonedOrderJob struct {
	handler commands.RemoveAbandonedOrdersCommandHandler
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAbandonedOrderJob creates a cleanup job with the given abandonment timeout.
func NewAbandonedOrderJob(
	handler commands.RemoveAbandonedOrdersCommandHandler,
	timeout time.Duration,
	logger *slog.Logger,
) *AbandonedOrderJob {
	return &AbandonedOrderJob{
		handler: handler,
		timeout: timeout,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "abandoned_order_job"),
	}
}

// Start begins the cleanup job, running every fifteen minutes.
func (j *AbandonedOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 */15 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRemoveAbandonedOrdersCommand(j.timeout)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid abandonment timeout", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Abandoned order cleanup failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed abandoned orders", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Abandoned order job started (running every 15 minutes)", "timeout", j.timeout)
	return nil
}

// Stop stops the cleanup job.
func (j *AbandonedOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned order job stopped")
}
