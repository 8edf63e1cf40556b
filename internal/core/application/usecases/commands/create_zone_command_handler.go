package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/route"
)

// CreateZoneCommandHandler handles the business logic for zone registration.
type CreateZoneCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone registration operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewCreateZoneCommandHandler(uowFactory RouteUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone registration command.
func (h *CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	zone, err := route.NewZone(cmd.ZoneID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RouteRepository().AddZone(ctx, zone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
