package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrNameIsRequired    = errors.New("name is required")
	ErrPhoneIsRequired   = errors.New("phone is required")
	ErrVehicleIsRequired = errors.New("vehicle is required")
	ErrCapacityIsInvalid = errors.New("capacity must be greater than 0")
)

// CreateDriverCommand represents a request to register a new delivery driver.
// A fresh driver ID is generated by the constructor; new drivers start available.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand("Alice", "+971501234567", "bike", 5)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register driver: %w", err)
//	}
//	fmt.Printf("Driver %s registered", cmd.DriverID())
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	phone    string
	vehicle  string
	capacity int

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates that name, phone and vehicle are not empty and capacity is positive.
func NewCreateDriverCommand(name, phone, vehicle string, capacity int) (CreateDriverCommand, error) {
	driverCommand := CreateDriverCommand{
		driverID: kernel.NewUUID(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverCommand.setName(name),
		driverCommand.setPhone(phone),
		driverCommand.setVehicle(vehicle),
		driverCommand.setCapacity(capacity),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return driverCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the generated identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's contact phone number.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// Vehicle returns the driver's vehicle description.
func (c CreateDriverCommand) Vehicle() string {
	return c.vehicle
}

// Capacity returns how many deliveries the driver can carry at once.
func (c CreateDriverCommand) Capacity() int {
	return c.capacity
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateDriverCommand) setVehicle(vehicle string) error {
	if vehicle == "" {
		return ErrVehicleIsRequired
	}

	c.vehicle = vehicle
	return nil
}

func (c *CreateDriverCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
