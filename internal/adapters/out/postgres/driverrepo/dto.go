// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// Status is stored as its string name; the assignment flow filters on it and
// uses it as the guard column for conditional reservation writes.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	Vehicle   string    `gorm:"type:varchar(64);not null"`
	Capacity  int       `gorm:"type:int;not null"`
	Status    string    `gorm:"type:varchar(16);not null;index"`
	Latitude  *float64  `gorm:"type:double precision"`
	Longitude *float64  `gorm:"type:double precision"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	var latitude, longitude *float64
	if loc := aggregate.CurrentLocation(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		latitude, longitude = &lat, &lng
	}

	return DriverDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Vehicle:   aggregate.Vehicle(),
		Capacity:  aggregate.Capacity(),
		Status:    aggregate.Status().String(),
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, dto.Vehicle, dto.Capacity, status, location)
}
