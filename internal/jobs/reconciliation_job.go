package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/queries"
)

// ReconciliationJob cross-checks driver bindings against order statuses and
// the CRM sync audit trail. Runs hourly; mismatches are logged as warnings
// for an operator, never repaired automatically.
type ReconciliationJob struct {
	handler queries.GetIntegrityReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReconciliationJob creates an hourly reconciliation job.
func NewReconciliationJob(
	handler queries.GetIntegrityReportQueryHandler,
	logger *slog.Logger,
) *ReconciliationJob {
	return &ReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reconciliation_job"),
	}
}

// Start begins the reconciliation job, running at the top of every hour.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		report, err := j.handler.Handle(ctx, queries.NewGetIntegrityReportQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation run failed", "error", err)
			return
		}

		if report.Clean() {
			j.logger.InfoContext(ctx, "Reconciliation clean")
			return
		}

		for _, m := range report.DriverMismatches {
			j.logger.WarnContext(ctx, "Busy driver without a matching active order",
				"driver_id", m.DriverID.String(),
				"driver_name", m.DriverName,
				"order_status", m.OrderStatus)
		}

		for _, m := range report.OrderMismatches {
			j.logger.WarnContext(ctx, "Active order whose driver is not bound to it",
				"order_id", m.OrderID.String(),
				"order_number", m.OrderNumber,
				"order_status", m.Status,
				"driver_id", m.DriverID.String(),
				"driver_status", m.DriverStatus)
		}

		for _, f := range report.FailedSyncs {
			j.logger.WarnContext(ctx, "Order with failed CRM sync attempts",
				"order_id", f.OrderID.String(),
				"order_number", f.OrderNumber,
				"failure_count", f.FailureCount)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started (running hourly)")
	return nil
}

// Stop stops the reconciliation job.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
