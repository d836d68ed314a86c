package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// unfinishedStatuses returns the assigned..in-transit window during which an
// order occupies its driver, as a Postgres array parameter.
func unfinishedStatuses() any {
	return pq.Array([]int64{
		int64(order.Assigned), int64(order.PickedUp), int64(order.InTransit),
	})
}

// GetIntegrityReportQueryHandler builds the reconciliation report from the
// database. Each section is a separate read so a single broken row cannot
// hide the others.
type GetIntegrityReportQueryHandler struct {
	db *gorm.DB
}

// NewGetIntegrityReportQueryHandler creates a handler for reconciliation
// queries. Requires a GORM database connection for query execution.
func NewGetIntegrityReportQueryHandler(db *gorm.DB) GetIntegrityReportQueryHandler {
	return GetIntegrityReportQueryHandler{db: db}
}

// Handle executes the reconciliation queries and assembles the report.
func (h GetIntegrityReportQueryHandler) Handle(
	ctx context.Context,
	query GetIntegrityReportQuery,
) (GetIntegrityReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetIntegrityReportQueryResponse{}, err
	}

	report := GetIntegrityReportQueryResponse{}

	driverMismatches, err := h.driverMismatches(ctx)
	if err != nil {
		return GetIntegrityReportQueryResponse{}, err
	}
	report.DriverMismatches = driverMismatches

	orderMismatches, err := h.orderMismatches(ctx)
	if err != nil {
		return GetIntegrityReportQueryResponse{}, err
	}
	report.OrderMismatches = orderMismatches

	failedSyncs, err := h.failedSyncs(ctx)
	if err != nil {
		return GetIntegrityReportQueryResponse{}, err
	}
	report.FailedSyncs = failedSyncs

	return report, nil
}

// driverMismatches finds busy drivers whose active order is gone or already
// past the assigned..in-transit window.
func (h GetIntegrityReportQueryHandler) driverMismatches(ctx context.Context) ([]DriverMismatch, error) {
	mismatches := make([]DriverMismatch, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.active_order_id,
			o.status
		FROM drivers d
		LEFT JOIN orders o ON o.id = d.active_order_id
		WHERE d.status = ?
		  AND (d.active_order_id IS NULL OR o.id IS NULL OR o.status <> ALL(?))
		ORDER BY d.name
	`, driver.Busy, unfinishedStatuses()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var mismatch DriverMismatch
		var id uuid.UUID
		var activeOrderID *uuid.UUID
		var status *int

		err = rows.Scan(&id, &mismatch.DriverName, &activeOrderID, &status)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		mismatch.DriverID = driverID

		if activeOrderID != nil {
			oID, oErr := kernel.UUIDFromBytes((*activeOrderID)[:])
			if oErr != nil {
				return nil, oErr
			}
			mismatch.ActiveOrderID = &oID
		}

		if status != nil {
			mismatch.OrderStatus = order.Status(*status).String()
		}

		mismatches = append(mismatches, mismatch)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mismatches, nil
}

// orderMismatches finds assigned, unfinished orders whose driver is not busy
// or not pointing back at the order.
func (h GetIntegrityReportQueryHandler) orderMismatches(ctx context.Context) ([]OrderMismatch, error) {
	mismatches := make([]OrderMismatch, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.status,
			o.driver_id,
			d.status
		FROM orders o
		JOIN drivers d ON d.id = o.driver_id
		WHERE o.status = ANY(?)
		  AND (d.status <> ? OR d.active_order_id IS NULL OR d.active_order_id <> o.id)
		ORDER BY o.created_at
	`, unfinishedStatuses(), driver.Busy).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var mismatch OrderMismatch
		var id uuid.UUID
		var driverID uuid.UUID
		var orderStatus int
		var driverStatus int

		err = rows.Scan(&id, &mismatch.OrderNumber, &orderStatus, &driverID, &driverStatus)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		mismatch.OrderID = orderID

		dID, dErr := kernel.UUIDFromBytes(driverID[:])
		if dErr != nil {
			return nil, dErr
		}
		mismatch.DriverID = dID

		mismatch.Status = order.Status(orderStatus).String()
		mismatch.DriverStatus = driver.Status(driverStatus).String()

		mismatches = append(mismatches, mismatch)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mismatches, nil
}

// failedSyncs counts failed CRM sync attempts per order.
func (h GetIntegrityReportQueryHandler) failedSyncs(ctx context.Context) ([]FailedSync, error) {
	failed := make([]FailedSync, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			COUNT(*) AS failures
		FROM sync_attempts s
		JOIN orders o ON o.id = s.order_id
		WHERE NOT s.success
		GROUP BY o.id, o.order_number
		ORDER BY failures DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sync FailedSync
		var id uuid.UUID

		err = rows.Scan(&id, &sync.OrderNumber, &sync.FailureCount)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		sync.OrderID = orderID

		failed = append(failed, sync)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return failed, nil
}
