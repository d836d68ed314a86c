package cmd

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/crm"
	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/syncrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	notifier         ports.Notifier
	syncTrigger      ports.SyncTrigger
	distanceResolver ports.DistanceResolver
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,

		notifier: notify.NewGormNotifier(gormDB, logger),
		syncTrigger: crm.NewSyncTrigger(
			configs.CRMBaseURL, syncrepo.NewGormSyncAttemptRepository(gormDB), logger),
		distanceResolver: geo.NewRoutingResolver(configs.GeoServiceURL, redisClient, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderTariffUoWFactory = FuncOrderTariffUoWFactory(func() commands.OrderTariffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f, c.notifier, c.syncTrigger, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.notifier, c.syncTrigger, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier, c.syncTrigger, c.logger)
}

func (c *CompositionRoot) CreateSubmitProofOfDeliveryCommandHandler() commands.SubmitProofOfDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitProofOfDeliveryCommandHandler(f, c.notifier, c.syncTrigger, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.notifier, c.syncTrigger, c.logger)
}

func (c *CompositionRoot) CreateApproveDeliveredOrdersCommandHandler() commands.ApproveDeliveredOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveDeliveredOrdersCommandHandler(f, c.notifier, c.syncTrigger, c.logger)
}

func (c *CompositionRoot) CreateRemoveAbandonedOrdersCommandHandler() commands.RemoveAbandonedOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveAbandonedOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertTariffCommandHandler() commands.UpsertTariffCommandHandler {
	var f commands.TariffUoWFactory = FuncTariffUoWFactory(func() commands.TariffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertTariffCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSyncAttemptsQueryHandler() queries.GetSyncAttemptsQueryHandler {
	return queries.NewGetSyncAttemptsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIntegrityReportQueryHandler() queries.GetIntegrityReportQueryHandler {
	return queries.NewGetIntegrityReportQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerParams{
		CreateOrderHandler:       c.CreateCreateOrderCommandHandler(),
		ConfirmPaymentHandler:    c.CreateConfirmPaymentCommandHandler(),
		AssignDriverHandler:      c.CreateAssignDriverCommandHandler(),
		UpdateOrderStatusHandler: c.CreateUpdateOrderStatusCommandHandler(),
		SubmitProofHandler:       c.CreateSubmitProofOfDeliveryCommandHandler(),
		CompleteOrderHandler:     c.CreateCompleteOrderCommandHandler(),
		CreateDriverHandler:      c.CreateCreateDriverCommandHandler(),
		UpsertTariffHandler:      c.CreateUpsertTariffCommandHandler(),
		MarkReadHandler:          c.CreateMarkNotificationReadCommandHandler(),

		GetQuoteHandler:           c.CreateGetQuoteQueryHandler(),
		GetActiveOrdersHandler:    c.CreateGetActiveOrdersQueryHandler(),
		GetAllDriversHandler:      c.CreateGetAllDriversQueryHandler(),
		GetNotificationsHandler:   c.CreateGetNotificationsQueryHandler(),
		GetSyncAttemptsHandler:    c.CreateGetSyncAttemptsQueryHandler(),
		GetIntegrityReportHandler: c.CreateGetIntegrityReportQueryHandler(),

		DistanceResolver: c.distanceResolver,
	})
}

// CreateJobManager wires the background maintenance jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.JobManagerParams{
		RemoveAbandonedHandler: c.CreateRemoveAbandonedOrdersCommandHandler(),
		ApproveHandler:         c.CreateApproveDeliveredOrdersCommandHandler(),
		IntegrityHandler:       c.CreateGetIntegrityReportQueryHandler(),

		AbandonmentTimeout:  c.configs.AbandonmentTimeout,
		ApprovalGracePeriod: c.configs.ApprovalGracePeriod,
		AutoApproveInvoices: c.configs.AutoApproveInvoices,

		Logger: c.logger,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncTariffUoWFactory func() commands.TariffUoW

func (f FuncTariffUoWFactory) Create() commands.TariffUoW {
	return f()
}

type FuncOrderTariffUoWFactory func() commands.OrderTariffUoW

func (f FuncOrderTariffUoWFactory) Create() commands.OrderTariffUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
