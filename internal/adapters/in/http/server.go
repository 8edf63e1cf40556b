// Package http contains the echo REST adapter for the fulfillment engine.
package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	createDriverHandler    commands.CreateDriverCommandHandler
	createZoneHandler      commands.CreateZoneCommandHandler
	createRouteHandler     commands.CreateRouteCommandHandler
	assignDriverHandler    commands.AssignDriverCommandHandler
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler

	// Query handlers
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	createZoneHandler commands.CreateZoneCommandHandler,
	createRouteHandler commands.CreateRouteCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		createDriverHandler:        createDriverHandler,
		createZoneHandler:          createZoneHandler,
		createRouteHandler:         createRouteHandler,
		assignDriverHandler:        assignDriverHandler,
		advanceDeliveryHandler:     advanceDeliveryHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		getAvailableDriversHandler: getAvailableDriversHandler,
	}
}

// RegisterRoutes mounts every handler on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/drivers", s.CreateDriver)
	api.POST("/zones", s.CreateZone)
	api.POST("/routes", s.CreateRoute)
	api.POST("/deliveries/:id/assign", s.AssignDriver)
	api.POST("/deliveries/:id/status", s.AdvanceDelivery)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.GET("/drivers/available", s.GetAvailableDrivers)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - places an order and schedules its deliveries.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		productID, err := kernel.UUIDFromString(itemRequest.ProductID)
		if err != nil {
			return writeError(ctx, err)
		}

		item, err := order.NewItem(productID, itemRequest.Name, itemRequest.Quantity, itemRequest.UnitPrice)
		if err != nil {
			return writeError(ctx, err)
		}
		items = append(items, item)
	}

	schedule := make([]commands.ScheduleEntry, 0, len(request.Schedule))
	for _, entryRequest := range request.Schedule {
		date, err := time.Parse(time.DateOnly, entryRequest.Date)
		if err != nil {
			return writeBadRequest(ctx, "Invalid schedule date: "+entryRequest.Date)
		}

		slot, err := kernel.SlotFromString(entryRequest.Slot)
		if err != nil {
			return writeError(ctx, err)
		}

		schedule = append(schedule, commands.ScheduleEntry{Date: date, Slot: slot})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, items, schedule)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - calls off an order and
// its still-active deliveries.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var request CreateDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(request.Name, request.Phone, request.Vehicle, request.Capacity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateDriverResponse{ID: cmd.DriverID().String()})
}

// CreateZone handles POST /api/v1/zones - registers a new zone.
func (s *Server) CreateZone(ctx echo.Context) error {
	var request CreateZoneRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateZoneCommand(request.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createZoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateZoneResponse{ID: cmd.ZoneID().String()})
}

// CreateRoute handles POST /api/v1/routes - registers a new route in a zone.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var request CreateRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	zoneID, err := kernel.UUIDFromString(request.ZoneID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateRouteCommand(zoneID, request.Name, request.EstimatedTime, request.MaxDeliveries)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateRouteResponse{ID: cmd.RouteID().String()})
}

// AssignDriver handles POST /api/v1/deliveries/:id/assign - binds an available
// driver to a pending delivery.
func (s *Server) AssignDriver(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request AssignDriverRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	var routeID *kernel.UUID
	if request.RouteID != "" {
		id, routeErr := kernel.UUIDFromString(request.RouteID)
		if routeErr != nil {
			return writeError(ctx, routeErr)
		}
		routeID = &id
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, driverID, routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceDelivery handles POST /api/v1/deliveries/:id/status - moves a
// delivery along its state machine.
func (s *Server) AdvanceDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request AdvanceDeliveryRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	target, err := delivery.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(deliveryID, target, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.advanceDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active - retrieves every
// delivery that has not reached a terminal status.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve deliveries",
		})
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, dlv := range deliveries {
		var driverID *string
		if dlv.DriverID != nil {
			id := dlv.DriverID.String()
			driverID = &id
		}

		response[i] = DeliveryResponse{
			ID:       dlv.ID.String(),
			OrderID:  dlv.OrderID.String(),
			DriverID: driverID,
			Date:     dlv.Date.Format(time.DateOnly),
			Slot:     dlv.Slot.String(),
			Status:   dlv.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableDrivers handles GET /api/v1/drivers/available - retrieves every
// driver currently free to take a delivery.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	query := queries.NewGetAvailableDriversQuery()

	drivers, err := s.getAvailableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve drivers",
		})
	}

	response := make([]DriverResponse, len(drivers))
	for i, drv := range drivers {
		response[i] = DriverResponse{
			ID:       drv.ID.String(),
			Name:     drv.Name,
			Phone:    drv.Phone,
			Vehicle:  drv.Vehicle,
			Capacity: drv.Capacity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
