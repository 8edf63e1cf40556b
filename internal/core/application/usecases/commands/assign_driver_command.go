package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to assign a driver to a pending
// delivery, optionally placing the delivery on a route at the same time.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(deliveryID, driverID, &routeID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // delivery, driver or route does not exist
//	case errors.Is(err, errs.ErrConflict):
//	    // delivery not pending, or driver not available
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	    // route is full for the delivery's date
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   kernel.UUID
	routeID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to a delivery.
// routeID is optional; when nil the delivery keeps its current route, if any.
func NewAssignDriverCommand(
	deliveryID, driverID kernel.UUID, routeID *kernel.UUID,
) (AssignDriverCommand, error) {
	assignCommand := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setDeliveryID(deliveryID),
		assignCommand.setDriverID(driverID),
		assignCommand.setRouteID(routeID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriverCommandIsNotConstructed if validation fails.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c AssignDriverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// RouteID returns the route to place the delivery on, or nil.
func (c AssignDriverCommand) RouteID() *kernel.UUID {
	return c.routeID
}

func (c *AssignDriverCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setRouteID(routeID *kernel.UUID) error {
	if routeID == nil {
		return nil
	}

	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
