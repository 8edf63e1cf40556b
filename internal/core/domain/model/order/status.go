package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Cancellation is a status change, never a row deletion; an order keeps its
// items and deliveries for reporting after it is cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status after checkout.
	StatusPending

	// StatusConfirmed indicates the order was accepted for fulfillment.
	StatusConfirmed

	// StatusDelivered indicates every delivery of the order completed. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was called off. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusConfirmed: "Confirmed",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the order permits no further status changes.
func (s Status) IsFinal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// PaymentStatus tracks how much of the order total has been settled.
type PaymentStatus int

const (
	// PaymentUnpaid means nothing has been received yet.
	PaymentUnpaid PaymentStatus = iota + 1

	// PaymentPartiallyPaid means some but not all of the total was received.
	PaymentPartiallyPaid

	// PaymentPaid means the full total was received.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnpaid:        "Unpaid",
		PaymentPartiallyPaid: "PartiallyPaid",
		PaymentPaid:          "Paid",
	}
}

// Validate checks if the PaymentStatus value is one of the defined statuses.
func (p PaymentStatus) Validate() error {
	if p < PaymentUnpaid || p > PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
