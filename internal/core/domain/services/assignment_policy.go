package services

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/errs"
)

// AssignmentPolicy is a domain service responsible for pairing a driver with a
// pending delivery.
//
// Business rules:
//   - The delivery must still be pending
//   - The driver must be available and is reserved by the assignment
//   - The delivery's route, when set, must have spare capacity for its date
//   - Assignment mutates both aggregates together; the caller persists them
//     in one transaction
type AssignmentPolicy struct{}

// NewAssignmentPolicy creates a new AssignmentPolicy instance.
func NewAssignmentPolicy() AssignmentPolicy {
	return AssignmentPolicy{}
}

// Assign reserves the driver and moves the delivery to Assigned.
//
// activeOnRoute is the number of active deliveries already counted against the
// delivery's route for its date, excluding the delivery being assigned. It is
// ignored when the delivery has no route.
func (p AssignmentPolicy) Assign(
	dlv *delivery.Delivery, drv *driver.Driver, rt *route.Route, activeOnRoute int, now time.Time,
) error {
	if err := dlv.Validate(); err != nil {
		return err
	}
	if err := drv.Validate(); err != nil {
		return err
	}

	if rt != nil {
		if err := rt.Validate(); err != nil {
			return err
		}
		if !rt.HasCapacity(activeOnRoute) {
			return errs.NewCapacityExceededError(rt.Name(), rt.MaxDeliveries())
		}
	}

	if err := drv.Reserve(); err != nil {
		return err
	}

	return dlv.Assign(drv.ID(), now)
}
