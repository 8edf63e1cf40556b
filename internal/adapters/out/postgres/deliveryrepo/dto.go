// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Status and slot are stored as their string names so that rows stay readable
// and the scheduler's sweep can filter on them directly.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	RouteID     *uuid.UUID `gorm:"type:uuid;index"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	Date        time.Time  `gorm:"type:date;not null;index:idx_deliveries_slot_date,priority:2"`
	Slot        string     `gorm:"type:varchar(16);not null;index:idx_deliveries_slot_date,priority:1"`
	Status      string     `gorm:"type:varchar(32);not null;index"`
	Notes       string     `gorm:"type:text"`
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var routeID, driverID *uuid.UUID
	if id := aggregate.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		RouteID:     routeID,
		DriverID:    driverID,
		Date:        aggregate.Date(),
		Slot:        aggregate.Slot().String(),
		Status:      aggregate.Status().String(),
		Notes:       aggregate.Notes(),
		AssignedAt:  aggregate.AssignedAt(),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate using RestoreDelivery, which re-checks
// the state machine invariants.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, routeErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if routeErr != nil {
			return nil, routeErr
		}
		routeID = &rID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	slot, err := kernel.SlotFromString(dto.Slot)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID, routeID, driverID,
		dto.Date, slot, status, dto.Notes,
		dto.AssignedAt, dto.StartedAt, dto.CompletedAt,
	)
}
