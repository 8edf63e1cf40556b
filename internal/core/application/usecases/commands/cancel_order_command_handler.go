package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
)

// cancelledByOrderNote is stored on deliveries closed by an order cancellation.
const cancelledByOrderNote = "Cancelled with order"

// CancelOrderCommandHandler orchestrates order cancellation.
// Cancels the order, cancels each of its still-active deliveries, and
// releases their drivers, all within one transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
// Requires a UoWFactory for coordinating updates across repositories.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// Returns an object-not-found error when the order does not exist and a
// conflict error when the order has already reached a final status.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.Cancel(); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	driverRepo := uow.DriverRepository()

	deliveries, err := deliveryRepo.GetAllActiveByOrder(ctx, ord.ID())
	if err != nil {
		return err
	}

	now := time.Now()
	for _, dlv := range deliveries {
		if err = dlv.Advance(delivery.StatusCancelled, cancelledByOrderNote, now); err != nil {
			return err
		}

		if dlv.DriverID() != nil {
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
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
