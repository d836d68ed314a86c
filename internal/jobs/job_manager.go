package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	abandonedOrderJob  *AbandonedOrderJob
	invoiceApprovalJob *InvoiceApprovalJob
	reconciliationJob  *ReconciliationJob
}

// JobManagerParams carries the handlers and schedules required by NewJobManager.
type JobManagerParams struct {
	RemoveAbandonedHandler commands.RemoveAbandonedOrdersCommandHandler
	ApproveHandler         commands.ApproveDeliveredOrdersCommandHandler
	IntegrityHandler       queries.GetIntegrityReportQueryHandler

	AbandonmentTimeout  time.Duration
	ApprovalGracePeriod time.Duration
	AutoApproveInvoices bool

	Logger *slog.Logger
}

// NewJobManager creates a new job manager with all required jobs.
// The invoice approval job is only created when auto-approval is enabled.
func NewJobManager(params JobManagerParams) *JobManager {
	jm := &JobManager{
		abandonedOrderJob: NewAbandonedOrderJob(
			params.RemoveAbandonedHandler, params.AbandonmentTimeout, params.Logger),
		reconciliationJob: NewReconciliationJob(params.IntegrityHandler, params.Logger),
	}

	if params.AutoApproveInvoices {
		jm.invoiceApprovalJob = NewInvoiceApprovalJob(
			params.ApproveHandler, params.ApprovalGracePeriod, params.Logger)
	}

	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.abandonedOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start abandoned order job: %w", err)
	}

	if err := jm.reconciliationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.abandonedOrderJob.Stop()
		return fmt.Errorf("failed to start reconciliation job: %w", err)
	}

	if jm.invoiceApprovalJob != nil {
		if err := jm.invoiceApprovalJob.Start(); err != nil {
			jm.reconciliationJob.Stop()
			jm.abandonedOrderJob.Stop()
			return fmt.Errorf("failed to start invoice approval job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.invoiceApprovalJob != nil {
		jm.invoiceApprovalJob.Stop()
	}
	jm.reconciliationJob.Stop()
	jm.abandonedOrderJob.Stop()
}
