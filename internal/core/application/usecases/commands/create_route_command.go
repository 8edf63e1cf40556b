package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
	ErrEstimatedTimeIsInvalid = errors.New("estimated time must be greater than 0")
	ErrMaxDeliveriesIsInvalid = errors.New("max deliveries must be greater than 0")
)

// CreateRouteCommand represents a request to register a new route inside an
// existing zone. A fresh route ID is generated by the constructor.
//
// Example:
//
//	cmd, err := NewCreateRouteCommand(zoneID, "Marina Loop", 45, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid route data: %w", err)
//	}
//
//	handler := NewCreateRouteCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register route: %w", err)
//	}
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID       kernel.UUID
	zoneID        kernel.UUID
	name          string
	estimatedTime int
	maxDeliveries int

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to register a new route.
// Validates that the zone ID is valid, the name is not empty, and the
// estimated time and delivery ceiling are positive.
func NewCreateRouteCommand(
	zoneID kernel.UUID, name string, estimatedTime, maxDeliveries int,
) (CreateRouteCommand, error) {
	routeCommand := CreateRouteCommand{
		routeID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeCommand.setZoneID(zoneID),
		routeCommand.setName(name),
		routeCommand.setEstimatedTime(estimatedTime),
		routeCommand.setMaxDeliveries(maxDeliveries),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return routeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRouteCommandIsNotConstructed if validation fails.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the generated identifier for the new route.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ZoneID returns the owning zone's identifier.
func (c CreateRouteCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the route's display name.
func (c CreateRouteCommand) Name() string {
	return c.name
}

// EstimatedTime returns the expected traversal time in minutes.
func (c CreateRouteCommand) EstimatedTime() int {
	return c.estimatedTime
}

// MaxDeliveries returns the ceiling of active deliveries per date.
func (c CreateRouteCommand) MaxDeliveries() int {
	return c.maxDeliveries
}

func (c *CreateRouteCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateRouteCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRouteCommand) setEstimatedTime(estimatedTime int) error {
	if estimatedTime <= 0 {
		return ErrEstimatedTimeIsInvalid
	}

	c.estimatedTime = estimatedTime
	return nil
}

func (c *CreateRouteCommand) setMaxDeliveries(maxDeliveries int) error {
	if maxDeliveries <= 0 {
		return ErrMaxDeliveriesIsInvalid
	}

	c.maxDeliveries = maxDeliveries
	return nil
}
