package delivery

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions so deliveries
// always follow the physical handling workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> NearDestination ──> Delivered
//	   │            │            │            │               │
//	   └────────────┴────────────┴────────────┴───────────────┴──> Failed | Cancelled
//
// Forward movement through the manual API happens exactly one step at a time.
// Failed and Cancelled are reachable from any non-terminal state. Delivered is
// reachable manually only from NearDestination; the fulfillment scheduler may
// jump to Delivered from any non-terminal state once a slot cutover has passed.
// Delivered, Failed and Cancelled are terminal: no further transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every delivery.
	// Pending deliveries have no driver and await assignment.
	StatusPending

	// StatusAssigned indicates a driver has been bound to the delivery.
	StatusAssigned

	// StatusPickedUp indicates the driver has collected the order.
	StatusPickedUp

	// StatusInTransit indicates the delivery is on its way.
	StatusInTransit

	// StatusNearDestination indicates the driver is close to the drop-off point.
	StatusNearDestination

	// StatusDelivered indicates successful completion. Terminal.
	StatusDelivered

	// StatusFailed indicates the delivery could not be completed. Terminal.
	StatusFailed

	// StatusCancelled indicates the delivery was called off. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusPending:         "Pending",
		StatusAssigned:        "Assigned",
		StatusPickedUp:        "PickedUp",
		StatusInTransit:       "InTransit",
		StatusNearDestination: "NearDestination",
		StatusDelivered:       "Delivered",
		StatusFailed:          "Failed",
		StatusCancelled:       "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Unknown names are rejected; callers translate the failure into an
// invalid-transition outcome so unrecognized targets are never applied.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusCancelled
}

// next returns the single legal forward step for non-terminal statuses.
func (s Status) next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusAssigned, true
	case StatusAssigned:
		return StatusPickedUp, true
	case StatusPickedUp:
		return StatusInTransit, true
	case StatusInTransit:
		return StatusNearDestination, true
	case StatusNearDestination:
		return StatusDelivered, true
	default:
		return StatusUnknown, false
	}
}

// Advance transitions the status to target through the manual API.
//
// Rules enforced:
//   - a terminal status permits no transition at all
//   - Failed and Cancelled are reachable from any non-terminal status
//   - every other move must be exactly one step forward; skipping
//     intermediate states is rejected
//   - an invalid target is rejected
//
// Returns the new status, or an InvalidTransitionError.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(s.String(), target.String(), err)
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), target.String(), errors.New("status is terminal"),
		)
	}

	if target == StatusFailed || target == StatusCancelled {
		return target, nil
	}

	next, ok := s.next()
	if !ok || next != target {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}

// AutoComplete transitions the status to Delivered through the scheduler's
// bulk completion path. Unlike Advance, any non-terminal status may jump
// straight to Delivered: once the slot cutover has passed the intermediate
// handling states are assumed complete or never materialized.
func (s Status) AutoComplete() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), StatusDelivered.String(), errors.New("status is terminal"),
		)
	}

	return StatusDelivered, nil
}
