package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// When the driver's status changed, the write is conditional on the stored
	// row still holding the status the aggregate was loaded with, so two
	// concurrent reservations of the same driver cannot both succeed.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves all drivers currently free to take a delivery.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
}
