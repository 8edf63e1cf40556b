package kernel

import "fulfillment/internal/pkg/errs"

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// Location is a value object holding geographic coordinates.
// Used for a driver's last reported position. Coordinates are validated
// on construction; the zero value (0, 0) is a legal coordinate, so optional
// locations are modeled as *Location on the owning aggregate.
type Location struct {
	latitude  float64
	longitude float64
}

// NewLocation creates a Location with validated coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewLocation(latitude, longitude float64) (Location, error) {
	if latitude < minLatitude || latitude > maxLatitude {
		return Location{}, errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	if longitude < minLongitude || longitude > maxLongitude {
		return Location{}, errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}

	return Location{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual compares two locations by coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}
