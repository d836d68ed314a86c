package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetIntegrityReportQueryIsNotConstructed = errors.New(
	"GetIntegrityReportQuery must be created via NewGetIntegrityReportQuery constructor",
)

// GetIntegrityReportQuery builds a reconciliation report over the order and
// driver tables: busy drivers without a live order, in-progress orders whose
// driver is not busy, and orders with failed CRM sync attempts.
type GetIntegrityReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetIntegrityReportQuery creates a query for the reconciliation report.
func NewGetIntegrityReportQuery() GetIntegrityReportQuery {
	return GetIntegrityReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetIntegrityReportQuery) Validate() error {
	return q.guard.Validate(ErrGetIntegrityReportQueryIsNotConstructed)
}

// DriverMismatch is a busy driver whose active order is missing or already
// finished.
type DriverMismatch struct {
	DriverID      kernel.UUID
	DriverName    string
	ActiveOrderID *kernel.UUID
	OrderStatus   string
}

// OrderMismatch is an assigned, unfinished order whose driver is not busy.
type OrderMismatch struct {
	OrderID      kernel.UUID
	OrderNumber  string
	Status       string
	DriverID     kernel.UUID
	DriverStatus string
}

// FailedSync is an order with at least one failed CRM sync attempt.
type FailedSync struct {
	OrderID      kernel.UUID
	OrderNumber  string
	FailureCount int64
}

// GetIntegrityReportQueryResponse is the full reconciliation report.
type GetIntegrityReportQueryResponse struct {
	DriverMismatches []DriverMismatch
	OrderMismatches  []OrderMismatch
	FailedSyncs      []FailedSync
}

// Clean reports whether no inconsistencies were found.
func (r GetIntegrityReportQueryResponse) Clean() bool {
	return len(r.DriverMismatches) == 0 &&
		len(r.OrderMismatches) == 0 &&
		len(r.FailedSyncs) == 0
}
