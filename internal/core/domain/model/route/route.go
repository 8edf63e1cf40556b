// Package route provides the Route and Zone entities used to group
// deliveries geographically. A Zone is a named service area owning many
// routes; a Route carries a capacity ceiling (maxDeliveries) that the
// assignment service enforces per calendar day.
package route

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute")
	// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone")
)

// Route groups deliveries within a zone. Deliveries hold a weak reference to
// their route; a route is never deleted while deliveries point at it.
type Route struct {
	id      kernel.UUID
	zoneID  kernel.UUID
	name    string
	// estimatedTime is the expected traversal time in minutes.
	estimatedTime int
	// maxDeliveries is the ceiling of active deliveries per date.
	maxDeliveries int

	guard guard.ConstructorGuard
}

// NewRoute creates a validated route within a zone.
func NewRoute(id, zoneID kernel.UUID, name string, estimatedTime, maxDeliveries int) (*Route, error) {
	if err := errors.Join(id.Validate(), zoneID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("route name")
	}
	if estimatedTime <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"estimated time", fmt.Errorf("%d is not greater than 0", estimatedTime),
		)
	}
	if maxDeliveries <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"max deliveries", fmt.Errorf("%d is not greater than 0", maxDeliveries),
		)
	}

	return &Route{
		id:            id,
		zoneID:        zoneID,
		name:          name,
		estimatedTime: estimatedTime,
		maxDeliveries: maxDeliveries,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Route was created through NewRoute.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// ZoneID returns the owning zone's identifier.
func (r *Route) ZoneID() kernel.UUID {
	return r.zoneID
}

// Name returns the route's display name.
func (r *Route) Name() string {
	return r.name
}

// EstimatedTime returns the expected traversal time in minutes.
func (r *Route) EstimatedTime() int {
	return r.estimatedTime
}

// MaxDeliveries returns the ceiling of active deliveries per date.
func (r *Route) MaxDeliveries() int {
	return r.maxDeliveries
}

// HasCapacity reports whether another delivery fits under the route's
// ceiling, given the count of active deliveries already on it for the date.
func (r *Route) HasCapacity(activeDeliveries int) bool {
	return activeDeliveries < r.maxDeliveries
}

// Zone is a named service area owning many routes.
type Zone struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewZone creates a validated zone.
func NewZone(id kernel.UUID, name string) (*Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("zone name")
	}

	return &Zone{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Zone was created through NewZone.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone's display name.
func (z *Zone) Name() string {
	return z.name
}
