package driver

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents a driver's availability for delivery work.
//
// State transitions:
//
//	available ──> on_delivery ──> available
//	available <──> offline
//
// A driver carries at most one active delivery at a time: reserving an
// already reserved driver is a conflict, which is what keeps two concurrent
// assignments from landing on the same driver.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the driver can accept a delivery.
	StatusAvailable

	// StatusOnDelivery means the driver is bound to an active delivery.
	StatusOnDelivery

	// StatusOffline means the driver is off shift and cannot be assigned.
	StatusOffline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusAvailable:  "available",
		StatusOnDelivery: "on_delivery",
		StatusOffline:    "offline",
	}
}

// StatusFromString parses a driver status from its string representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"driver status", fmt.Errorf("%q is not a valid driver status", s),
	)
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if s != StatusAvailable && s != StatusOnDelivery && s != StatusOffline {
		return errs.NewValueIsInvalidErrorWithCause(
			"driver status", fmt.Errorf("%d is not a valid driver status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
