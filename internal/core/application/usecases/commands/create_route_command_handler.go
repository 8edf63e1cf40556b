package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/route"
)

// CreateRouteCommandHandler handles the business logic for route registration.
// Routes are always created inside an existing zone; the handler verifies the
// zone before persisting.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route registration operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route registration command.
// Fails with an object-not-found error when the referenced zone does not exist.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()

	zone, err := routeRepo.GetZone(ctx, cmd.ZoneID())
	if err != nil {
		return err
	}

	newRoute, err := route.NewRoute(
		cmd.RouteID(), zone.ID(), cmd.Name(), cmd.EstimatedTime(), cmd.MaxDeliveries(),
	)
	if err != nil {
		return err
	}

	if err = routeRepo.Add(ctx, newRoute); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
