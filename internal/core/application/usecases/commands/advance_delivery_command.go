package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand represents a request to move a delivery to a new
// status: the next step in the normal progression, or Failed or Cancelled
// from any active status. Optional notes are stored on the delivery.
//
// Example:
//
//	cmd, err := NewAdvanceDeliveryCommand(deliveryID, delivery.StatusPickedUp, "")
//	if err != nil {
//	    return fmt.Errorf("invalid status request: %w", err)
//	}
//
//	handler := NewAdvanceDeliveryCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the requested edge is not part of the state machine
//	}
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status
	notes      string

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to move a delivery to target.
// Validates the delivery ID and that target is a known status. Whether the
// edge is legal from the delivery's current status is decided by the
// aggregate when the command is handled.
func NewAdvanceDeliveryCommand(
	deliveryID kernel.UUID, target delivery.Status, notes string,
) (AdvanceDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), target.Validate()); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return AdvanceDeliveryCommand{
		deliveryID: deliveryID,
		target:     target,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceDeliveryCommandIsNotConstructed if validation fails.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c AdvanceDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested status.
func (c AdvanceDeliveryCommand) Target() delivery.Status {
	return c.target
}

// Notes returns the optional notes to store on the delivery.
func (c AdvanceDeliveryCommand) Notes() string {
	return c.notes
}
