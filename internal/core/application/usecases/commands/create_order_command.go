package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired    = errors.New("at least one item is required")
	ErrScheduleIsRequired  = errors.New("at least one schedule entry is required")
	ErrScheduleDateIsEmpty = errors.New("schedule date must not be zero")
)

// ScheduleEntry is one planned delivery occurrence: a calendar date paired
// with a meal slot. An order carries one entry per delivery it spawns.
type ScheduleEntry struct {
	Date time.Time
	Slot kernel.Slot
}

// CreateOrderCommand represents a request to place a new meal order together
// with its delivery schedule. One delivery is spawned per schedule entry.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, items, schedule)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	items    []order.Item
	schedule []ScheduleEntry

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, every item snapshot was constructed,
// and every schedule entry carries a date and a known slot.
func NewCreateOrderCommand(
	orderID kernel.UUID, items []order.Item, schedule []ScheduleEntry,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
		orderCommand.setSchedule(schedule),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the order's item snapshots.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Schedule returns the planned delivery occurrences.
func (c CreateOrderCommand) Schedule() []ScheduleEntry {
	return c.schedule
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setSchedule(schedule []ScheduleEntry) error {
	if len(schedule) == 0 {
		return ErrScheduleIsRequired
	}

	for _, entry := range schedule {
		if entry.Date.IsZero() {
			return ErrScheduleDateIsEmpty
		}
		if err := entry.Slot.Validate(); err != nil {
			return err
		}
	}

	c.schedule = append([]ScheduleEntry(nil), schedule...)
	return nil
}
