package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/syncrepo"
	"dispatch/internal/adapters/out/postgres/tariffrepo"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tariff"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&tariffrepo.TariffDTO{},
		&notificationrepo.NotificationDTO{},
		&syncrepo.SyncAttemptDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, drivers, tariffs, notifications, sync_attempts").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.DriverRepository(), "First instance should provide driver repository")
	suite.NotNil(uow1.TariffRepository(), "First instance should provide tariff repository")
	suite.NotNil(uow1.NotificationRepository(), "First instance should provide notification repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
	suite.Equal(testOrder.OrderNumber(), retrievedOrder.OrderNumber())
	suite.Equal(order.AwaitingPayment, retrievedOrder.Status())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createPendingOrder(suite.T())
	testDriver := createTestDriver(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Assign driver to order and order to driver within same transaction
	err = testOrder.Assign(testDriver.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = testDriver.Assign(testOrder.ID())
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both aggregates persisted correctly with relationships
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.Driver())
	suite.Equal(testDriver.ID(), *retrievedOrder.Driver())
	suite.Equal(order.Assigned, retrievedOrder.Status())
	suite.NotNil(retrievedOrder.AssignedAt())

	retrievedDriver, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.Busy, retrievedDriver.Status())
	suite.Require().NotNil(retrievedDriver.ActiveOrder())
	suite.Equal(testOrder.ID(), *retrievedDriver.ActiveOrder())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())
	testDriver := createTestDriver(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Verify aggregates exist within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify aggregates do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")
}

// TestUnitOfWork_OrderLifecycleWorkflow tests the complete order lifecycle
// involving multiple aggregates and domain operations across transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testOrder := createTestOrder(suite.T())
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	testDriver := createTestDriver(suite.T())
	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Walk the order through its whole lifecycle
	err = testOrder.ConfirmPayment()
	suite.Require().NoError(err)

	err = testOrder.Assign(testDriver.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = testDriver.Assign(testOrder.ID())
	suite.Require().NoError(err)

	err = testOrder.MarkPickedUp(time.Now().UTC())
	suite.Require().NoError(err)

	err = testOrder.MarkInTransit(time.Now().UTC())
	suite.Require().NoError(err)

	proof, err := order.NewProofOfDelivery("", "", "Alex Chen", "left at reception")
	suite.Require().NoError(err)
	err = testOrder.Deliver(proof, time.Now().UTC())
	suite.Require().NoError(err)
	err = testDriver.Release()
	suite.Require().NoError(err)

	err = testOrder.Complete(time.Now().UTC())
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Proof())
	suite.Equal("Alex Chen", retrievedOrder.Proof().RecipientName())
	suite.NotNil(retrievedOrder.PickedUpAt())
	suite.NotNil(retrievedOrder.DeliveredAt())
	suite.NotNil(retrievedOrder.CompletedAt())

	retrievedDriver, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.Available, retrievedDriver.Status())
	suite.Nil(retrievedDriver.ActiveOrder())

	// Released driver appears in the available list again
	availableDrivers, err := newUow.DriverRepository().GetAllAvailable(ctx)
	suite.Require().NoError(err)
	found := false
	for _, d := range availableDrivers {
		if d.ID().IsEqual(testDriver.ID()) {
			found = true
			break
		}
	}
	suite.True(found, "Driver should be available for new orders")
}

// TestUnitOfWork_ConditionalUpdateLosesRace verifies that a stale status
// precondition leaves the row untouched and surfaces a version error.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConditionalUpdateLosesRace() {
	ctx := context.Background()

	pendingOrder := createPendingOrder(suite.T())
	setupUow := suite.factory.Create()
	err := setupUow.OrderRepository().Add(ctx, pendingOrder)
	suite.Require().NoError(err)

	// Two dispatchers load the same pending order
	driver1 := createTestDriver(suite.T())
	driver2 := createTestDriver(suite.T())

	uow1 := suite.factory.Create()
	loaded1, err := uow1.OrderRepository().Get(ctx, pendingOrder.ID())
	suite.Require().NoError(err)

	uow2 := suite.factory.Create()
	loaded2, err := uow2.OrderRepository().Get(ctx, pendingOrder.ID())
	suite.Require().NoError(err)

	// First assignment wins
	err = loaded1.Assign(driver1.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow1.OrderRepository().UpdateIfStatus(ctx, loaded1, order.Pending)
	suite.Require().NoError(err)

	// Second assignment finds the precondition gone
	err = loaded2.Assign(driver2.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow2.OrderRepository().UpdateIfStatus(ctx, loaded2, order.Pending)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)

	// Stored order kept the winner's driver
	finalUow := suite.factory.Create()
	final, err := finalUow.OrderRepository().Get(ctx, pendingOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(final.Driver())
	suite.Equal(driver1.ID(), *final.Driver())
}

// TestUnitOfWork_TariffSwap verifies the deactivate-then-add tariff swap is
// atomic and leaves exactly one active tariff.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TariffSwap() {
	ctx := context.Background()

	oldTariff := createTestTariff(suite.T())
	setupUow := suite.factory.Create()
	err := setupUow.TariffRepository().Add(ctx, oldTariff)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.TariffRepository().DeactivateActive(ctx)
	suite.Require().NoError(err)

	newTariff := createTestTariff(suite.T())
	err = uow.TariffRepository().Add(ctx, newTariff)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	finalUow := suite.factory.Create()
	active, err := finalUow.TariffRepository().GetActive(ctx)
	suite.Require().NoError(err)
	suite.Equal(newTariff.ID(), active.ID())

	var activeCount int64
	err = suite.db.Model(&tariffrepo.TariffDTO{}).Where("active").Count(&activeCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), activeCount)
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// createTestOrder creates a valid order awaiting payment for testing purposes.
func createTestOrder(t *testing.T) *order.Order {
	t.Helper()

	shipment, err := order.NewShipment(
		"100 Pine St", "200 Oak Ave",
		nil, nil,
		12.5, 40, false,
		"office paperwork", "",
	)
	if err != nil {
		t.Fatalf("failed to build shipment: %v", err)
	}

	breakdown, err := tariff.NewPriceBreakdown(
		mustMoney(t, 2500),
		mustMoney(t, 3125),
		mustMoney(t, 2000),
		kernel.ZeroMoney(),
	)
	if err != nil {
		t.Fatalf("failed to build breakdown: %v", err)
	}

	id := kernel.NewUUID()
	testOrder, err := order.NewOrder(
		id,
		"ORD-"+id.String()[:8],
		kernel.NewUUID(),
		"customer@example.com",
		shipment,
		breakdown,
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("failed to build order: %v", err)
	}

	return testOrder
}

// createPendingOrder creates an order already past payment confirmation.
func createPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	testOrder := createTestOrder(t)
	if err := testOrder.ConfirmPayment(); err != nil {
		t.Fatalf("failed to confirm payment: %v", err)
	}

	return testOrder
}

// createTestDriver creates a valid available driver for testing purposes.
func createTestDriver(t *testing.T) *driver.Driver {
	t.Helper()

	testDriver, err := driver.NewDriver(
		kernel.NewUUID(),
		"Test Driver",
		"+1-555-0100",
		"van",
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("failed to build driver: %v", err)
	}

	return testDriver
}

// createTestTariff creates a valid active tariff for testing purposes.
func createTestTariff(t *testing.T) *tariff.Tariff {
	t.Helper()

	testTariff, err := tariff.NewTariff(
		kernel.NewUUID(),
		mustMoney(t, 2500),
		mustMoney(t, 250),
		mustMoney(t, 50),
		50,
		mustMoney(t, 1500),
		25,
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("failed to build tariff: %v", err)
	}

	return testTariff
}

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()

	m, err := kernel.NewMoneyFromCents(cents)
	if err != nil {
		t.Fatalf("failed to build money: %v", err)
	}

	return m
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
