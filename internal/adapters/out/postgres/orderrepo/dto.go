// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary amounts are stored in minor currency units.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status        int        `gorm:"type:int;not null;index"`
	TotalAmount   int64      `gorm:"type:bigint;not null"`
	PaidAmount    int64      `gorm:"type:bigint;not null"`
	PaymentStatus int        `gorm:"type:int;not null"`
	CreatedAt     time.Time  `gorm:"not null"`
	Items         []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one immutable order line in the database.
// Item rows are written once at order creation and never updated.
type ItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"type:int;not null"`
	UnitPrice int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order item entities.
// Overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := aggregate.Items()

	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		Status:        int(aggregate.Status()),
		TotalAmount:   aggregate.TotalAmount(),
		PaidAmount:    aggregate.PaidAmount(),
		PaymentStatus: int(aggregate.PaymentStatus()),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including item snapshots using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		order.Status(dto.Status),
		items,
		dto.TotalAmount,
		dto.PaidAmount,
		order.PaymentStatus(dto.PaymentStatus),
		dto.CreatedAt,
	)
}
