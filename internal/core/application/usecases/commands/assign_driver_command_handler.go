package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/services"
)

// AssignDriverCommandHandler orchestrates driver assignment.
// Loads the delivery, the driver and the delivery's route, applies the
// assignment policy, and persists both aggregates within one transaction.
// The driver repository's conditional status write ensures two concurrent
// assignments cannot both reserve the same driver.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
// Returns an object-not-found error when the delivery, driver or route does
// not exist, a conflict error when the delivery is not pending or the driver
// is not available, and a capacity-exceeded error when the route is full for
// the delivery's date.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	driverRepo := uow.DriverRepository()

	dlv, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	targetRouteID := cmd.RouteID()
	if targetRouteID == nil {
		targetRouteID = dlv.RouteID()
	}

	var (
		rt            *route.Route
		activeOnRoute int
	)
	if targetRouteID != nil {
		rt, err = uow.RouteRepository().Get(ctx, *targetRouteID)
		if err != nil {
			return err
		}

		activeOnRoute, err = deliveryRepo.CountActiveByRouteAndDate(ctx, rt.ID(), dlv.Date())
		if err != nil {
			return err
		}

		// The delivery being assigned must not count against the ceiling.
		if dlv.RouteID() != nil && dlv.RouteID().IsEqual(rt.ID()) {
			activeOnRoute--
		}

		if cmd.RouteID() != nil {
			if err = dlv.AssignRoute(*cmd.RouteID()); err != nil {
				return err
			}
		}
	}

	if err = services.NewAssignmentPolicy().Assign(dlv, drv, rt, activeOnRoute, time.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
