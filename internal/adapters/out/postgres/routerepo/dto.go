// Package routerepo provides data transfer objects and mapping functions for
// zone and route persistence.
package routerepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for persisting zones.
type ZoneDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "zones"
}

// RouteDTO represents the database structure for persisting routes.
type RouteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZoneID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	EstimatedTime int       `gorm:"type:int;not null"`
	MaxDeliveries int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

func zoneFromDomain(zone *route.Zone) ZoneDTO {
	return ZoneDTO{
		ID:   zone.ID().Bytes(),
		Name: zone.Name(),
	}
}

func zoneToDomain(dto ZoneDTO) (*route.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return route.NewZone(id, dto.Name)
}

func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:            aggregate.ID().Bytes(),
		ZoneID:        aggregate.ZoneID().Bytes(),
		Name:          aggregate.Name(),
		EstimatedTime: aggregate.EstimatedTime(),
		MaxDeliveries: aggregate.MaxDeliveries(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	return route.NewRoute(id, zoneID, dto.Name, dto.EstimatedTime, dto.MaxDeliveries)
}
