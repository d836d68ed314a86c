// Package jobs schedules the periodic maintenance the order lifecycle needs,
// built on github.com/robfig/cron/v3:
//
//   - AbandonedOrderJob removes orders stuck in awaiting-payment past the
//     abandonment timeout.
//   - InvoiceApprovalJob auto-approves delivered orders once the dispute
//     grace period passes. Registered only when auto-approval is enabled.
//   - ReconciliationJob cross-checks driver bindings against order statuses
//     and logs mismatches.
//
// JobManager owns the set: StartAll brings the jobs up and stops the ones
// already running if a later one fails to start; StopAll shuts them down.
// Individual runs are best effort; a failed run is logged and the next tick
// retries.
package jobs
