package delivery

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// autoCompletionNoteFormat is the note synthesized on scheduler-driven completion.
const autoCompletionNoteFormat = "Automatically completed by fulfillment scheduler at %s"

// Delivery represents a single scheduled delivery occurrence of an order.
// It is the aggregate root of the fulfillment engine and enforces these invariants:
//   - a driver is bound whenever the status is anything beyond Pending
//   - completedAt is set exactly when the status is terminal
//   - status transitions follow the Status state machine
//
// A Delivery holds weak references to its Driver and Route: both are looked up
// by ID and never owned. The Order owns its deliveries.
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID

	// routeID groups the delivery geographically; nil until a route is chosen.
	routeID *kernel.UUID

	// driverID is the assigned driver; nil while the delivery is Pending.
	driverID *kernel.UUID

	// date is the target calendar day, normalized to midnight.
	date time.Time

	slot   kernel.Slot
	status Status
	notes  string

	assignedAt  *time.Time
	startedAt   *time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a pending delivery for an order occurrence.
// The target date is normalized to midnight; the time-of-day component of the
// occurrence is carried by the slot.
func NewDelivery(id, orderID kernel.UUID, date time.Time, slot kernel.Slot) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		slot.Validate(),
		validateDate(date),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:      id,
		orderID: orderID,
		date:    NormalizeDate(date),
		slot:    slot,
		status:  StatusPending,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
// All state machine invariants are re-checked so corrupted rows cannot
// produce an aggregate in an impossible state.
func RestoreDelivery(
	id, orderID kernel.UUID,
	routeID, driverID *kernel.UUID,
	date time.Time,
	slot kernel.Slot,
	status Status,
	notes string,
	assignedAt, startedAt, completedAt *time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		slot.Validate(),
		status.Validate(),
		validateDate(date),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return nil, err
		}
	}

	if status != StatusPending && driverID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"delivery",
			fmt.Errorf("status %s requires an assigned driver", status),
		)
	}
	if status.IsTerminal() != (completedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"delivery",
			fmt.Errorf("completedAt must be set exactly for terminal statuses, status is %s", status),
		)
	}

	return &Delivery{
		id:          id,
		orderID:     orderID,
		routeID:     routeID,
		driverID:    driverID,
		date:        NormalizeDate(date),
		slot:        slot,
		status:      status,
		notes:       notes,
		assignedAt:  assignedAt,
		startedAt:   startedAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the owning order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// RouteID returns the referenced route's identifier, or nil.
func (d *Delivery) RouteID() *kernel.UUID {
	return d.routeID
}

// DriverID returns the assigned driver's identifier, or nil while Pending.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// Date returns the target calendar day (midnight-normalized).
func (d *Delivery) Date() time.Time {
	return d.date
}

// Slot returns the delivery window.
func (d *Delivery) Slot() kernel.Slot {
	return d.slot
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Notes returns the free-form notes recorded on the delivery.
func (d *Delivery) Notes() string {
	return d.notes
}

// AssignedAt returns when a driver was bound, or nil.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// StartedAt returns when physical handling began, or nil.
func (d *Delivery) StartedAt() *time.Time {
	return d.startedAt
}

// CompletedAt returns when the delivery reached a terminal status, or nil.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// IsActive reports whether the delivery is still in a non-terminal status.
func (d *Delivery) IsActive() bool {
	return !d.status.IsTerminal()
}

// Assign binds a driver to a pending delivery and advances it to Assigned.
//
// Only pending deliveries can be assigned through this method; reassignment
// of an in-flight delivery is a distinct administrative operation. Returns a
// ConflictError if the delivery is not Pending.
func (d *Delivery) Assign(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if d.status != StatusPending {
		return errs.NewConflictErrorWithCause(
			"delivery is not pending",
			fmt.Errorf("delivery %s is %s", d.id, d.status),
		)
	}

	assignedAt := now
	d.driverID = &driverID
	d.status = StatusAssigned
	d.assignedAt = &assignedAt
	return nil
}

// AssignRoute binds the delivery to a route. Route selection is independent
// of driver assignment and never changes driver availability. Terminal
// deliveries cannot be re-routed.
func (d *Delivery) AssignRoute(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	if d.status.IsTerminal() {
		return errs.NewConflictErrorWithCause(
			"delivery is completed",
			fmt.Errorf("delivery %s is %s", d.id, d.status),
		)
	}

	d.routeID = &routeID
	return nil
}

// Advance moves the delivery to target through the manual API, applying the
// state machine rules from Status.Advance plus delivery-level side effects:
//
//   - Assigned is rejected here: binding a driver goes through Assign
//   - entering PickedUp records startedAt
//   - entering a terminal status records completedAt
//   - notes, when non-empty, are stored verbatim
//
// The caller is responsible for releasing the driver when the delivery
// reaches a terminal status; both writes belong to one transaction.
func (d *Delivery) Advance(target Status, notes string, now time.Time) error {
	if target == StatusAssigned && d.driverID == nil {
		return errs.NewInvalidTransitionErrorWithCause(
			d.status.String(), target.String(), errors.New("a driver must be assigned first"),
		)
	}

	newStatus, err := d.status.Advance(target)
	if err != nil {
		return err
	}

	d.applyStatus(newStatus, now)
	if notes != "" {
		d.notes = notes
	}
	return nil
}

// AutoComplete moves the delivery straight to Delivered through the
// scheduler's bulk completion path and synthesizes a note recording the
// automatic nature and time of completion.
func (d *Delivery) AutoComplete(now time.Time) error {
	newStatus, err := d.status.AutoComplete()
	if err != nil {
		return err
	}

	d.applyStatus(newStatus, now)
	d.notes = fmt.Sprintf(autoCompletionNoteFormat, now.Format(time.RFC3339))
	return nil
}

func (d *Delivery) applyStatus(newStatus Status, now time.Time) {
	d.status = newStatus

	if newStatus == StatusPickedUp && d.startedAt == nil {
		startedAt := now
		d.startedAt = &startedAt
	}
	if newStatus.IsTerminal() && d.completedAt == nil {
		completedAt := now
		d.completedAt = &completedAt
	}
}

// NormalizeDate truncates a timestamp to midnight in its own location.
// Deliveries are keyed by calendar day; the slot carries the time of day.
func NormalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	return nil
}
