// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
//
// Side effects that leave the system boundary (in-app notifications, CRM sync)
// run after the owning transaction commits and are fire-and-forget: their
// failure never fails the command.
package commands

import (
	"context"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// TariffRepoFactory provides access to the tariff repository within a transaction.
	TariffRepoFactory interface {
		TariffRepository() ports.TariffRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// TariffUoW manages transactions for tariff administration.
	TariffUoW interface {
		TxManager
		TariffRepoFactory
	}

	// TariffUoWFactory creates new tariff unit of work instances.
	TariffUoWFactory interface {
		Create() TariffUoW
	}

	// OrderTariffUoW manages transactions for checkout, which reads the
	// active tariff and writes the priced order atomically.
	OrderTariffUoW interface {
		TxManager
		OrderRepoFactory
		TariffRepoFactory
	}

	// OrderTariffUoWFactory creates new checkout unit of work instances.
	OrderTariffUoWFactory interface {
		Create() OrderTariffUoW
	}

	// NotificationUoW manages transactions for notification operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW manages transactions across order and driver aggregates.
	// Used for commands that flip driver availability together with an order
	// transition, which must happen in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   driverRepo := uow.DriverRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// generateOrderNumber derives the human-facing order reference from the
// order's UUID: "ORD-" plus the first eight hex digits, uppercased.
func generateOrderNumber(id kernel.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return "ORD-" + strings.ToUpper(hex[:8])
}
