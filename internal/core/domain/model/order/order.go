package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrItemsAreRequired is returned when attempting to create an order without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order represents a meal order placed at checkout. It is an aggregate root
// owning its immutable item snapshots; the scheduled deliveries it spawns are
// separate aggregates keyed by the order's ID, because the fulfillment engine
// mutates them independently.
//
// Monetary amounts are in minor currency units.
type Order struct {
	id            kernel.UUID
	status        Status
	items         []Item
	totalAmount   int64
	paidAmount    int64
	paymentStatus PaymentStatus
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending, unpaid order from its item snapshots.
// The total is derived from the items; at least one item is required.
func NewOrder(id kernel.UUID, items []Item, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	var total int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total += item.Subtotal()
	}

	return &Order{
		id:            id,
		status:        StatusPending,
		items:         append([]Item(nil), items...),
		totalAmount:   total,
		paymentStatus: PaymentUnpaid,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	items []Item,
	totalAmount, paidAmount int64,
	paymentStatus PaymentStatus,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		status:        status,
		items:         append([]Item(nil), items...),
		totalAmount:   totalAmount,
		paidAmount:    paidAmount,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the order's lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the immutable item snapshots.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// PaidAmount returns the amount received so far in minor currency units.
func (o *Order) PaidAmount() int64 {
	return o.paidAmount
}

// PaymentStatus returns how much of the total has been settled.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Confirm accepts a pending order for fulfillment.
func (o *Order) Confirm() error {
	if o.status != StatusPending {
		return errs.NewConflictErrorWithCause(
			"order is not pending",
			fmt.Errorf("order %s is %s", o.id, o.status),
		)
	}

	o.status = StatusConfirmed
	return nil
}

// MarkDelivered closes a confirmed order after all its deliveries completed.
func (o *Order) MarkDelivered() error {
	if o.status != StatusConfirmed {
		return errs.NewConflictErrorWithCause(
			"order is not confirmed",
			fmt.Errorf("order %s is %s", o.id, o.status),
		)
	}

	o.status = StatusDelivered
	return nil
}

// Cancel calls off an order that has not reached a final status.
// The caller cancels the order's still-active deliveries in the same
// transaction; the order row itself is never deleted.
func (o *Order) Cancel() error {
	if o.status.IsFinal() {
		return errs.NewConflictErrorWithCause(
			"order is already closed",
			fmt.Errorf("order %s is %s", o.id, o.status),
		)
	}

	o.status = StatusCancelled
	return nil
}

// RecordPayment registers a received amount and recomputes the payment status.
func (o *Order) RecordPayment(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is not greater than 0", amount),
		)
	}

	o.paidAmount += amount
	switch {
	case o.paidAmount >= o.totalAmount:
		o.paymentStatus = PaymentPaid
	case o.paidAmount > 0:
		o.paymentStatus = PaymentPartiallyPaid
	default:
		o.paymentStatus = PaymentUnpaid
	}
	return nil
}
