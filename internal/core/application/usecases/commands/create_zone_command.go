package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand represents a request to register a new service zone.
// A fresh zone ID is generated by the constructor.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to register a new zone.
// Validates that the zone name is not empty.
func NewCreateZoneCommand(name string) (CreateZoneCommand, error) {
	if name == "" {
		return CreateZoneCommand{}, ErrNameIsRequired
	}

	return CreateZoneCommand{
		zoneID: kernel.NewUUID(),
		name:   name,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateZoneCommandIsNotConstructed if validation fails.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// ZoneID returns the generated identifier for the new zone.
func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the zone's display name.
func (c CreateZoneCommand) Name() string {
	return c.name
}
