// Package postgres implements the Unit of Work over GORM transactions.
//
// A unit of work wraps one business transaction: the command handler calls
// Begin, performs repository operations that all share the same gorm
// transaction, and finishes with Commit or Rollback. Dual writes such as
// order assignment (order + driver updated together) rely on this to stay
// atomic.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().UpdateIfStatus(ctx, order, prev); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//	if err := uow.DriverRepository().Update(ctx, drv); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create() call returns an independent instance; concurrent handlers
// never share one. Repositories obtained before Begin operate on the plain
// connection, which the read-only query paths use.
package postgres

import (
	"context"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/tariffrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate touched during the transaction so
// post-commit side effects (notifications, sync) know what changed.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory produces UnitOfWork instances bound to a shared
// database connection. The composition root adapts it to the narrow
// per-handler factory interfaces.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over an open gorm connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork carries one gorm transaction and the aggregates modified
// inside it. Not safe for concurrent use; every handler invocation gets its
// own instance from the factory.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling Begin again on an instance with an
// open transaction is a no-op, so nested transactions never happen.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// Begin was never called. The instance cannot be reused afterwards.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// Begin was never called.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns the order repository bound to the active
// transaction, or to the plain connection when no transaction is open.
// Aggregates the repository writes are registered via TrackAggregate.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// DriverRepository returns the driver repository bound to the active
// transaction, or to the plain connection when no transaction is open.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return driverrepo.NewGormDriverRepository(db, uow)
}

// TariffRepository returns the tariff repository bound to the active
// transaction, or to the plain connection when no transaction is open.
func (uow *GormUnitOfWork) TariffRepository() ports.TariffRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return tariffrepo.NewGormTariffRepository(db, uow)
}

// NotificationRepository returns the notification repository bound to the
// active transaction, or to the plain connection when no transaction is open.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return notificationrepo.NewGormNotificationRepository(db, uow)
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Repositories call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
