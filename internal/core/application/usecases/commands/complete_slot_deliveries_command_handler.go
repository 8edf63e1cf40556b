package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// SlotCompletionResult reports the outcome of one slot's sweep.
type SlotCompletionResult struct {
	// Slot is the meal slot the sweep covered.
	Slot kernel.Slot
	// LatestDate is the most recent calendar date whose cutover had passed.
	LatestDate time.Time
	// Completed is the number of deliveries auto-completed by this sweep.
	Completed int
	// Failed is the number of deliveries the sweep could not close.
	Failed int
}

// CompleteSlotDeliveriesCommandHandler runs the fulfillment scheduler sweep.
// For each slot whose cutover has passed, it auto-completes every delivery
// still active on or before the due date and frees the assigned drivers.
//
// Each delivery is closed in its own transaction, so one poisoned row cannot
// block the rest of the sweep. The sweep is idempotent: it selects only
// deliveries that are still active, so a re-run after a crash picks up
// exactly the deliveries the previous run failed to close.
type CompleteSlotDeliveriesCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	cutovers   map[kernel.Slot]Cutover
	logger     *slog.Logger
}

// NewCompleteSlotDeliveriesCommandHandler creates a handler for scheduler sweeps.
// cutovers must define a valid cutover for every slot.
func NewCompleteSlotDeliveriesCommandHandler(
	uowFactory FulfillmentUoWFactory,
	cutovers map[kernel.Slot]Cutover,
	logger *slog.Logger,
) (CompleteSlotDeliveriesCommandHandler, error) {
	for _, slot := range kernel.AllSlots() {
		cutover, ok := cutovers[slot]
		if !ok {
			return CompleteSlotDeliveriesCommandHandler{}, fmt.Errorf("no cutover configured for slot %s", slot)
		}
		if err := cutover.Validate(); err != nil {
			return CompleteSlotDeliveriesCommandHandler{}, fmt.Errorf("slot %s: %w", slot, err)
		}
	}

	return CompleteSlotDeliveriesCommandHandler{
		uowFactory: uowFactory,
		cutovers:   cutovers,
		logger:     logger,
	}, nil
}

// Handle runs one sweep observed at the command's time and returns the
// per-slot results. A failure to close an individual delivery is logged and
// counted; it does not abort the sweep.
func (h CompleteSlotDeliveriesCommandHandler) Handle(
	ctx context.Context, cmd CompleteSlotDeliveriesCommand,
) ([]SlotCompletionResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := cmd.Now()
	results := make([]SlotCompletionResult, 0, len(kernel.AllSlots()))

	for _, slot := range kernel.AllSlots() {
		latestDate, due := h.latestDueDate(slot, now)
		if !due {
			continue
		}

		result, err := h.sweepSlot(ctx, slot, latestDate, now)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}

// latestDueDate returns the most recent calendar date whose cutover for the
// slot is at or before now. The second return value is false when even
// yesterday's cutover is somehow in the future, which cannot happen with a
// valid cutover but keeps the arithmetic honest.
func (h CompleteSlotDeliveriesCommandHandler) latestDueDate(
	slot kernel.Slot, now time.Time,
) (time.Time, bool) {
	latest := now
	if now.Before(h.cutovers[slot].On(now)) {
		latest = now.AddDate(0, 0, -1)
	}

	if now.Before(h.cutovers[slot].On(latest)) {
		return time.Time{}, false
	}

	return delivery.NormalizeDate(latest), true
}

func (h CompleteSlotDeliveriesCommandHandler) sweepSlot(
	ctx context.Context, slot kernel.Slot, latestDate, now time.Time,
) (SlotCompletionResult, error) {
	result := SlotCompletionResult{Slot: slot, LatestDate: latestDate}

	due, err := h.listDue(ctx, slot, latestDate)
	if err != nil {
		return SlotCompletionResult{}, err
	}

	for _, dlv := range due {
		if err = h.completeDelivery(ctx, dlv.ID(), now); err != nil {
			result.Failed++
			h.logger.Error("failed to auto-complete delivery",
				"delivery_id", dlv.ID().String(),
				"slot", slot.String(),
				"error", err,
			)
			continue
		}

		result.Completed++
	}

	return result, nil
}

func (h CompleteSlotDeliveriesCommandHandler) listDue(
	ctx context.Context, slot kernel.Slot, latestDate time.Time,
) ([]*delivery.Delivery, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.DeliveryRepository().GetAllActiveDue(ctx, slot, latestDate)
}

// completeDelivery closes one delivery in its own transaction.
// The delivery is re-read inside the transaction; if a concurrent operation
// already closed it, the sweep skips it without error.
func (h CompleteSlotDeliveriesCommandHandler) completeDelivery(
	ctx context.Context, deliveryID kernel.UUID, now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	dlv, err := deliveryRepo.Get(ctx, deliveryID)
	if err != nil {
		return err
	}

	if !dlv.IsActive() {
		return nil
	}

	if err = dlv.AutoComplete(now); err != nil {
		return err
	}

	if dlv.DriverID() != nil {
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

	return uow.Commit(ctx)
}
