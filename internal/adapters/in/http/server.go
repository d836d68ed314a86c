package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	confirmPaymentHandler    commands.ConfirmPaymentCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	submitProofHandler       commands.SubmitProofOfDeliveryCommandHandler
	completeOrderHandler     commands.CompleteOrderCommandHandler
	createDriverHandler      commands.CreateDriverCommandHandler
	upsertTariffHandler      commands.UpsertTariffCommandHandler
	markReadHandler          commands.MarkNotificationReadCommandHandler

	// Query handlers
	getQuoteHandler           queries.GetQuoteQueryHandler
	getActiveOrdersHandler    queries.GetActiveOrdersQueryHandler
	getAllDriversHandler      queries.GetAllDriversQueryHandler
	getNotificationsHandler   queries.GetNotificationsQueryHandler
	getSyncAttemptsHandler    queries.GetSyncAttemptsQueryHandler
	getIntegrityReportHandler queries.GetIntegrityReportQueryHandler

	// Outbound ports used directly by the HTTP layer
	distanceResolver ports.DistanceResolver
}

// ServerParams carries the handlers required by NewServer.
type ServerParams struct {
	CreateOrderHandler       commands.CreateOrderCommandHandler
	ConfirmPaymentHandler    commands.ConfirmPaymentCommandHandler
	AssignDriverHandler      commands.AssignDriverCommandHandler
	UpdateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	SubmitProofHandler       commands.SubmitProofOfDeliveryCommandHandler
	CompleteOrderHandler     commands.CompleteOrderCommandHandler
	CreateDriverHandler      commands.CreateDriverCommandHandler
	UpsertTariffHandler      commands.UpsertTariffCommandHandler
	MarkReadHandler          commands.MarkNotificationReadCommandHandler

	GetQuoteHandler           queries.GetQuoteQueryHandler
	GetActiveOrdersHandler    queries.GetActiveOrdersQueryHandler
	GetAllDriversHandler      queries.GetAllDriversQueryHandler
	GetNotificationsHandler   queries.GetNotificationsQueryHandler
	GetSyncAttemptsHandler    queries.GetSyncAttemptsQueryHandler
	GetIntegrityReportHandler queries.GetIntegrityReportQueryHandler

	DistanceResolver ports.DistanceResolver
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(params ServerParams) *Server {
	return &Server{
		createOrderHandler:       params.CreateOrderHandler,
		confirmPaymentHandler:    params.ConfirmPaymentHandler,
		assignDriverHandler:      params.AssignDriverHandler,
		updateOrderStatusHandler: params.UpdateOrderStatusHandler,
		submitProofHandler:       params.SubmitProofHandler,
		completeOrderHandler:     params.CompleteOrderHandler,
		createDriverHandler:      params.CreateDriverHandler,
		upsertTariffHandler:      params.UpsertTariffHandler,
		markReadHandler:          params.MarkReadHandler,

		getQuoteHandler:           params.GetQuoteHandler,
		getActiveOrdersHandler:    params.GetActiveOrdersHandler,
		getAllDriversHandler:      params.GetAllDriversHandler,
		getNotificationsHandler:   params.GetNotificationsHandler,
		getSyncAttemptsHandler:    params.GetSyncAttemptsHandler,
		getIntegrityReportHandler: params.GetIntegrityReportHandler,

		distanceResolver: params.DistanceResolver,
	}
}

// GetQuote handles GET /api/v1/quote - prices a prospective delivery.
func (s *Server) GetQuote(ctx echo.Context, params servers.GetQuoteParams) error {
	urgent := params.Urgent != nil && *params.Urgent

	query, err := queries.NewGetQuoteQuery(params.DistanceMiles, params.WeightLb, urgent)
	if err != nil {
		return badRequest(ctx, "Invalid quote parameters: "+err.Error())
	}

	quote, err := s.getQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
				Code:    http.StatusServiceUnavailable,
				Message: "No active tariff is configured",
			})
		}
		return internalError(ctx, "Failed to calculate quote")
	}

	return ctx.JSON(http.StatusOK, servers.Quote{
		BaseRateCents:        quote.BaseRateCents,
		MileageChargeCents:   quote.MileageChargeCents,
		WeightSurchargeCents: quote.WeightSurchargeCents,
		UrgentSurchargeCents: quote.UrgentSurchargeCents,
		TotalPriceCents:      quote.TotalPriceCents,
	})
}

// CreateOrder handles POST /api/v1/orders - starts checkout for a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	pickup, err := locationFromCoords(newOrder.PickupLat, newOrder.PickupLng)
	if err != nil {
		return badRequest(ctx, "Invalid pickup coordinates: "+err.Error())
	}
	dropoff, err := locationFromCoords(newOrder.DropoffLat, newOrder.DropoffLng)
	if err != nil {
		return badRequest(ctx, "Invalid dropoff coordinates: "+err.Error())
	}

	distance, err := s.resolveDistance(ctx, newOrder.DistanceMiles, pickup, dropoff)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderParams{
		OrderID:             orderID,
		CustomerID:          customerID,
		CustomerContact:     newOrder.CustomerContact,
		PickupAddress:       newOrder.PickupAddress,
		DropoffAddress:      newOrder.DropoffAddress,
		PickupLocation:      pickup,
		DropoffLocation:     dropoff,
		DistanceMiles:       distance,
		WeightLb:            newOrder.WeightLb,
		Urgent:              newOrder.Urgent,
		Description:         newOrder.Description,
		SpecialInstructions: deref(newOrder.SpecialInstructions),
	})
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
				Code:    http.StatusServiceUnavailable,
				Message: "No active tariff is configured",
			})
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists orders in flight.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:              o.ID.Bytes(),
			OrderNumber:     o.OrderNumber,
			Status:          o.Status,
			CustomerContact: o.CustomerContact,
			PickupAddress:   o.PickupAddress,
			DropoffAddress:  o.DropoffAddress,
			DriverId:        optionalUUID(o.DriverID),
			Urgent:          o.Urgent,
			TotalPriceCents: o.TotalPriceCents,
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/confirm-payment.
func (s *Server) ConfirmPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderCommandError(ctx, handleErr, "Failed to confirm payment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignDriver(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AssignDriverRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	driverID, err := kernel.UUIDFromBytes(body.DriverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderCommandError(ctx, handleErr, "Failed to assign driver")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/{orderId}/status - driver
// progress reports (picked-up, in-transit).
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.UpdateStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	target, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderCommandError(ctx, handleErr, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitProofOfDelivery handles POST /api/v1/orders/{orderId}/proof.
func (s *Server) SubmitProofOfDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ProofOfDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewSubmitProofOfDeliveryCommand(
		orderID,
		deref(body.PhotoUrl),
		deref(body.SignatureUrl),
		deref(body.RecipientName),
		deref(body.Notes),
	)
	if err != nil {
		return badRequest(ctx, "Invalid proof of delivery: "+err.Error())
	}

	if handleErr := s.submitProofHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderCommandError(ctx, handleErr, "Failed to submit proof of delivery")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete - invoice approval.
func (s *Server) CompleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderCommandError(ctx, handleErr, "Failed to complete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSyncAttempts handles GET /api/v1/orders/{orderId}/sync-attempts.
func (s *Server) GetSyncAttempts(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetSyncAttemptsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	attempts, err := s.getSyncAttemptsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve sync attempts")
	}

	response := make([]servers.SyncAttempt, len(attempts))
	for i, attempt := range attempts {
		response[i] = servers.SyncAttempt{
			Id:          attempt.ID.Bytes(),
			OrderId:     attempt.OrderID.Bytes(),
			Kind:        attempt.Kind,
			Payload:     attempt.Payload,
			Success:     attempt.Success,
			Error:       attempt.Error,
			AttemptedAt: attempt.AttemptedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDrivers handles GET /api/v1/drivers - lists the whole fleet.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve drivers")
	}

	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = servers.Driver{
			Id:            d.ID.Bytes(),
			Name:          d.Name,
			Contact:       d.Contact,
			VehicleType:   d.VehicleType,
			Status:        d.Status,
			ActiveOrderId: optionalUUID(d.ActiveOrderID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var newDriver servers.NewDriver
	if err := ctx.Bind(&newDriver); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(
		kernel.NewUUID(), newDriver.Name, newDriver.Contact, newDriver.VehicleType)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create driver")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateTariff handles POST /api/v1/tariffs - publishes a new tariff version.
func (s *Server) CreateTariff(ctx echo.Context) error {
	var newTariff servers.NewTariff
	if err := ctx.Bind(&newTariff); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	baseRate, err1 := kernel.NewMoneyFromCents(newTariff.BaseRateCents)
	perMile, err2 := kernel.NewMoneyFromCents(newTariff.PerMileRateCents)
	perPound, err3 := kernel.NewMoneyFromCents(newTariff.PerPoundRateCents)
	heavySurcharge, err4 := kernel.NewMoneyFromCents(newTariff.HeavySurchargeCents)
	if err := errors.Join(err1, err2, err3, err4); err != nil {
		return badRequest(ctx, "Invalid tariff rates: "+err.Error())
	}

	cmd, err := commands.NewUpsertTariffCommand(
		kernel.NewUUID(),
		baseRate, perMile, perPound,
		newTariff.HeavyThresholdLb,
		heavySurcharge,
		newTariff.UrgentPercent,
	)
	if err != nil {
		return badRequest(ctx, "Invalid tariff data: "+err.Error())
	}

	if handleErr := s.upsertTariffHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create tariff")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetNotifications handles GET /api/v1/notifications.
func (s *Server) GetNotifications(ctx echo.Context, params servers.GetNotificationsParams) error {
	recipientID, err := kernel.UUIDFromBytes(params.RecipientId[:])
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	unreadOnly := params.UnreadOnly != nil && *params.UnreadOnly

	query, err := queries.NewGetNotificationsQuery(recipientID, unreadOnly)
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve notifications")
	}

	response := make([]servers.Notification, len(notifications))
	for i, n := range notifications {
		response[i] = servers.Notification{
			Id:        n.ID.Bytes(),
			OrderId:   optionalUUID(n.OrderID),
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context, notificationId openapi_types.UUID) error {
	var body servers.MarkReadRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	notificationID, err := kernel.UUIDFromBytes(notificationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid notification id")
	}
	recipientID, err := kernel.UUIDFromBytes(body.RecipientId[:])
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, recipientID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.markReadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Notification not found")
		}
		return internalError(ctx, "Failed to mark notification read")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetIntegrityReport handles GET /api/v1/integrity-report.
func (s *Server) GetIntegrityReport(ctx echo.Context) error {
	query := queries.NewGetIntegrityReportQuery()

	report, err := s.getIntegrityReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to build integrity report")
	}

	driverMismatches := make([]servers.DriverMismatch, len(report.DriverMismatches))
	for i, m := range report.DriverMismatches {
		var status *string
		if m.OrderStatus != "" {
			v := m.OrderStatus
			status = &v
		}
		driverMismatches[i] = servers.DriverMismatch{
			DriverId:      m.DriverID.Bytes(),
			DriverName:    m.DriverName,
			ActiveOrderId: optionalUUID(m.ActiveOrderID),
			OrderStatus:   status,
		}
	}

	orderMismatches := make([]servers.OrderMismatch, len(report.OrderMismatches))
	for i, m := range report.OrderMismatches {
		orderMismatches[i] = servers.OrderMismatch{
			OrderId:      m.OrderID.Bytes(),
			OrderNumber:  m.OrderNumber,
			Status:       m.Status,
			DriverId:     m.DriverID.Bytes(),
			DriverStatus: m.DriverStatus,
		}
	}

	failedSyncs := make([]servers.FailedSync, len(report.FailedSyncs))
	for i, f := range report.FailedSyncs {
		failedSyncs[i] = servers.FailedSync{
			OrderId:      f.OrderID.Bytes(),
			OrderNumber:  f.OrderNumber,
			FailureCount: f.FailureCount,
		}
	}

	return ctx.JSON(http.StatusOK, servers.IntegrityReport{
		Clean:            report.Clean(),
		DriverMismatches: driverMismatches,
		OrderMismatches:  orderMismatches,
		FailedSyncs:      failedSyncs,
	})
}

// resolveDistance picks the distance for checkout: an explicit value from the
// request wins, otherwise both coordinate pairs must be present so the routing
// service (or its straight-line fallback) can answer.
func (s *Server) resolveDistance(
	ctx echo.Context,
	explicit *float64,
	pickup, dropoff *kernel.Location,
) (float64, error) {
	if explicit != nil {
		return *explicit, nil
	}

	if pickup == nil || dropoff == nil {
		return 0, errors.New("either distance_miles or both coordinate pairs are required")
	}

	return s.distanceResolver.ResolveMiles(ctx.Request().Context(), *pickup, *dropoff)
}

// locationFromCoords builds an optional location from an optional coordinate
// pair. Providing only one half of the pair is an error.
func locationFromCoords(lat, lng *float64) (*kernel.Location, error) {
	if lat == nil && lng == nil {
		return nil, nil //nolint:nilnil //absent coordinates are not an error
	}
	if lat == nil || lng == nil {
		return nil, errors.New("latitude and longitude must be provided together")
	}

	location, err := kernel.NewLocation(*lat, *lng)
	if err != nil {
		return nil, err
	}

	return &location, nil
}

// orderCommandError maps order command failures onto HTTP status codes:
// missing aggregates are 404, transition and concurrency violations are 409,
// anything else is a 500 with the given message.
func orderCommandError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, "Order or driver not found")
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, driver.ErrDriverIsNotAvailable),
		errors.Is(err, driver.ErrDriverIsNotBusy):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, message)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := id.Bytes()
	return &u
}
