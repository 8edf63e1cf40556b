// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllActive retrieves all deliveries that have not reached a terminal
	// status, ordered by date and slot.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)

	// GetAllActiveDue retrieves the non-terminal deliveries in the given slot
	// whose scheduled date is on or before latestDate. The scheduler sweeps
	// this set once the slot's cutover passes; re-running the sweep returns
	// only the deliveries a previous run failed to close.
	GetAllActiveDue(ctx context.Context, slot kernel.Slot, latestDate time.Time) ([]*delivery.Delivery, error)

	// GetAllActiveByOrder retrieves the non-terminal deliveries spawned by an order.
	// Used when cancelling an order to cancel its remaining deliveries.
	GetAllActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error)

	// CountActiveByRouteAndDate counts the non-terminal deliveries on a route
	// for a calendar date. The assignment flow compares the count against the
	// route's ceiling.
	CountActiveByRouteAndDate(ctx context.Context, routeID kernel.UUID, date time.Time) (int, error)
}
