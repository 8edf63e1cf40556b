package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for routes and zones.
type RouteRepository interface {
	// AddZone persists a new zone.
	AddZone(ctx context.Context, zone *route.Zone) error

	// GetZone retrieves a zone by its unique identifier.
	GetZone(ctx context.Context, id kernel.UUID) (*route.Zone, error)

	// Add persists a new route within an existing zone.
	Add(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetAllByZone retrieves all routes belonging to a zone.
	GetAllByZone(ctx context.Context, zoneID kernel.UUID) ([]*route.Route, error)
}
