package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tariff"
	"dispatch/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) DeleteAllAwaitingPaymentBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockTariffRepository struct{ mock.Mock }

func (m *MockTariffRepository) Add(ctx context.Context, t *tariff.Tariff) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTariffRepository) GetActive(ctx context.Context) (*tariff.Tariff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariff.Tariff), args.Error(1)
}

func (m *MockTariffRepository) DeactivateActive(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

// MockUoW implements every unit-of-work shape the handlers use; tests wire
// only the repositories the handler under test touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) TariffRepository() ports.TariffRepository {
	args := m.Called()
	return args.Get(0).(ports.TariffRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderTariffUoWFactory struct{ mock.Mock }

func (m *MockOrderTariffUoWFactory) Create() commands.OrderTariffUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderTariffUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockTariffUoWFactory struct{ mock.Mock }

func (m *MockTariffUoWFactory) Create() commands.TariffUoW {
	args := m.Called()
	return args.Get(0).(commands.TariffUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n *notification.Notification) {
	m.Called(ctx, n)
}

type MockSyncTrigger struct{ mock.Mock }

func (m *MockSyncTrigger) Sync(ctx context.Context, event ports.SyncEvent) {
	m.Called(ctx, event)
}

// Test fixtures shared across handler tests.

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func testTariff(t *testing.T) *tariff.Tariff {
	t.Helper()
	tf, err := tariff.NewTariff(
		kernel.NewUUID(),
		mustMoney(t, 2500),
		mustMoney(t, 250),
		mustMoney(t, 50),
		50,
		mustMoney(t, 1500),
		25,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return tf
}

func testBreakdown(t *testing.T) tariff.PriceBreakdown {
	t.Helper()
	b, err := tariff.NewPriceBreakdown(
		mustMoney(t, 2500),
		mustMoney(t, 2500),
		mustMoney(t, 3000),
		mustMoney(t, 0),
	)
	require.NoError(t, err)
	return b
}

func testShipment(t *testing.T) order.Shipment {
	t.Helper()
	s, err := order.NewShipment(
		"1 Market St", "300 Broadway", nil, nil, 10, 60, false, "boxes", "")
	require.NoError(t, err)
	return s
}

// testOrderInStatus restores an order already progressed to the given status,
// with the timestamps that status implies.
func testOrderInStatus(t *testing.T, status order.Status, driverID *kernel.UUID) *order.Order {
	t.Helper()

	createdAt := time.Now().UTC().Add(-2 * time.Hour)
	params := order.RestoreOrderParams{
		ID:              kernel.NewUUID(),
		OrderNumber:     "ORD-5A2F91C0",
		CustomerID:      kernel.NewUUID(),
		CustomerContact: "+1-415-555-0100",
		DriverID:        driverID,
		Shipment:        testShipment(t),
		Breakdown:       testBreakdown(t),
		Status:          status,
		CreatedAt:       createdAt,
	}

	if status >= order.Assigned && driverID != nil {
		at := createdAt.Add(10 * time.Minute)
		params.AssignedAt = &at
	}
	if status >= order.PickedUp {
		at := createdAt.Add(30 * time.Minute)
		params.PickedUpAt = &at
	}
	if status >= order.InTransit {
		at := createdAt.Add(40 * time.Minute)
		params.InTransitAt = &at
	}
	if status >= order.Delivered {
		at := createdAt.Add(90 * time.Minute)
		params.DeliveredAt = &at
		proof, err := order.NewProofOfDelivery("", "", "Alex Chen", "")
		require.NoError(t, err)
		params.Proof = &proof
	}

	o, err := order.RestoreOrder(params)
	require.NoError(t, err)
	return o
}
