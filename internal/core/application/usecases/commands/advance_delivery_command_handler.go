package commands

import (
	"context"
	"time"
)

// AdvanceDeliveryCommandHandler orchestrates delivery status transitions.
// The state machine itself lives in the delivery aggregate; the handler loads
// the aggregate, applies the transition, and releases the delivery's driver
// when the transition closes the delivery. Both writes share one transaction.
type AdvanceDeliveryCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewAdvanceDeliveryCommandHandler creates a handler for delivery status transitions.
// Requires a FulfillmentUoWFactory for coordinating delivery and driver updates.
func NewAdvanceDeliveryCommandHandler(uowFactory FulfillmentUoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Returns an object-not-found error when the delivery does not exist and an
// invalid-transition error when the requested edge is not legal from the
// delivery's current status.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	dlv, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = dlv.Advance(cmd.Target(), cmd.Notes(), time.Now()); err != nil {
		return err
	}

	if dlv.Status().IsTerminal() && dlv.DriverID() != nil {
		driverRepo := uow.DriverRepository()

		drv, driverErr := driverRepo.Get(ctx, *dlv.DriverID())
		if driverErr != nil {
			return driverErr
		}

		drv.Release()
		if err = driverRepo.Update(ctx, drv); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
