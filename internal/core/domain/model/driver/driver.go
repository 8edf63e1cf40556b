package driver

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
)

// Driver represents a delivery driver in the system.
// It is an aggregate root managing the driver's identity, vehicle, capacity
// and availability status.
//
// The core concurrency invariant of the fulfillment engine lives here: a
// driver is bound to at most one active delivery at a time. Reserve moves an
// available driver to on_delivery and fails for any other status, and Release
// returns the driver to the pool when their delivery reaches a terminal state.
// Both writes always share a transaction with the corresponding delivery write.
type Driver struct {
	id       kernel.UUID
	name     string
	phone    string
	vehicle  string
	capacity int
	status   Status

	// currentLocation is the last reported position, nil when never reported.
	currentLocation *kernel.Location

	guard guard.ConstructorGuard
}

// NewDriver creates a new available driver with validated attributes.
// Capacity is the number of meals the vehicle can carry and must be positive.
func NewDriver(id kernel.UUID, name, phone, vehicle string, capacity int) (*Driver, error) {
	d := &Driver{
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicle(vehicle),
		d.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	name, phone, vehicle string,
	capacity int,
	status Status,
	currentLocation *kernel.Location,
) (*Driver, error) {
	d, err := NewDriver(id, name, phone, vehicle, capacity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	d.currentLocation = currentLocation
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact number.
func (d *Driver) Phone() string {
	return d.phone
}

// Vehicle returns the vehicle description.
func (d *Driver) Vehicle() string {
	return d.vehicle
}

// Capacity returns the number of meals the vehicle can carry.
func (d *Driver) Capacity() int {
	return d.capacity
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// CurrentLocation returns the last reported position, or nil.
func (d *Driver) CurrentLocation() *kernel.Location {
	return d.currentLocation
}

// IsAvailable reports whether the driver can accept a delivery.
func (d *Driver) IsAvailable() bool {
	return d.status == StatusAvailable
}

// Reserve moves an available driver to on_delivery.
// Returns a ConflictError for any other status, which is how a second
// concurrent assignment attempt on the same driver is rejected.
func (d *Driver) Reserve() error {
	if d.status != StatusAvailable {
		return errs.NewConflictErrorWithCause(
			"driver is not available",
			fmt.Errorf("driver %s is %s", d.id, d.status),
		)
	}

	d.status = StatusOnDelivery
	return nil
}

// Release returns the driver to the available pool.
// Called when the driver's delivery reaches a terminal status; releasing an
// already available driver is a no-op so the operation stays idempotent.
func (d *Driver) Release() {
	d.status = StatusAvailable
}

// GoOffline takes the driver off shift. A driver with an active delivery
// cannot go offline.
func (d *Driver) GoOffline() error {
	if d.status == StatusOnDelivery {
		return errs.NewConflictErrorWithCause(
			"driver is on delivery",
			fmt.Errorf("driver %s cannot go offline mid-delivery", d.id),
		)
	}

	d.status = StatusOffline
	return nil
}

// GoOnline brings an offline driver back to the available pool.
func (d *Driver) GoOnline() {
	if d.status == StatusOffline {
		d.status = StatusAvailable
	}
}

// ReportLocation updates the driver's last known position.
func (d *Driver) ReportLocation(location kernel.Location) {
	d.currentLocation = &location
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicle(vehicle string) error {
	if vehicle == "" {
		return errs.NewValueIsRequiredError("vehicle")
	}
	d.vehicle = vehicle
	return nil
}

func (d *Driver) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity", fmt.Errorf("%d is not greater than 0", capacity),
		)
	}
	d.capacity = capacity
	return nil
}
