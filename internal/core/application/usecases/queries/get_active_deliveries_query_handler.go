package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves active deliveries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active deliveries.
// Returns a slice of delivery read models ordered by date and slot.
// Converts database types to domain types for consistency.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			driver_id,
			date,
			slot,
			status
		FROM deliveries
		WHERE status NOT IN ('Delivered', 'Failed', 'Cancelled')
		ORDER BY date, slot, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			response   GetActiveDeliveriesQueryResponse
			id         uuid.UUID
			orderID    uuid.UUID
			driverID   uuid.NullUUID
			slotName   string
			statusName string
		)

		err = rows.Scan(&id, &orderID, &driverID, &response.Date, &slotName, &statusName)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = deliveryID

		deliveryOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.OrderID = deliveryOrderID

		if driverID.Valid {
			deliveryDriverID, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.DriverID = &deliveryDriverID
		}

		slot, slotErr := kernel.SlotFromString(slotName)
		if slotErr != nil {
			return nil, slotErr
		}
		response.Slot = slot

		status, statusErr := delivery.StatusFromString(statusName)
		if statusErr != nil {
			return nil, statusErr
		}
		response.Status = status

		deliveries = append(deliveries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
