package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
)

// InvoiceApprovalJob auto-approves delivered orders whose dispute grace
// period has passed, completing them without manual review. Runs every
// minute and is only scheduled when auto-approval is enabled in config.
type InvoiceApprovalJob struct {
	handler     commands.ApproveDeliveredOrdersCommandHandler
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewInvoiceApprovalJob creates an approval job with the given grace period.
func NewInvoiceApprovalJob(
	handler commands.ApproveDeliveredOrdersCommandHandler,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *InvoiceApprovalJob {
	return &InvoiceApprovalJob{
		handler:     handler,
		gracePeriod: gracePeriod,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "invoice_approval_job"),
	}
}

// Start begins the approval job, running every minute.
func (j *InvoiceApprovalJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewApproveDeliveredOrdersCommand(j.gracePeriod)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid approval grace period", "error", err)
			return
		}

		approved, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invoice approval sweep failed", "error", err)
			return
		}

		if approved > 0 {
			j.logger.InfoContext(ctx, "Auto-approved delivered orders", "count", approved)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Invoice approval job started (running every minute)", "grace_period", j.gracePeriod)
	return nil
}

// Stop stops the approval job.
func (j *InvoiceApprovalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Invoice approval job stopped")
}
