package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves every driver currently free to take a
// delivery. Used by dispatch tooling to pick a driver for assignment.
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query to retrieve available drivers.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableDriversQueryIsNotConstructed if validation fails.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// GetAvailableDriversQueryResponse represents one available driver in the read model.
type GetAvailableDriversQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Phone    string
	Vehicle  string
	Capacity int
}
