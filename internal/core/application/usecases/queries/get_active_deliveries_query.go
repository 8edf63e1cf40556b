// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves every delivery that has not reached a
// terminal status, for dispatch boards and monitoring.
//
// Example:
//
//	query := NewGetActiveDeliveriesQuery()
//	handler := NewGetActiveDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve deliveries: %w", err)
//	}
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query to retrieve all active deliveries.
// This is a parameterless query; filtering happens in the handler's SQL.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveDeliveriesQueryIsNotConstructed if validation fails.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse represents one active delivery in the read model.
type GetActiveDeliveriesQueryResponse struct {
	ID       kernel.UUID
	OrderID  kernel.UUID
	DriverID *kernel.UUID
	Date     time.Time
	Slot     kernel.Slot
	Status   delivery.Status
}
