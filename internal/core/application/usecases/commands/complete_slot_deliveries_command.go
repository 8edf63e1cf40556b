package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrCompleteSlotDeliveriesCommandIsNotConstructed = errors.New(
		"CompleteSlotDeliveriesCommand must be created via NewCompleteSlotDeliveriesCommand constructor",
	)
	ErrNowIsRequired = errors.New("now must not be zero")
)

// Cutover is the wall-clock moment within a day after which a slot's
// deliveries are considered finished for that date.
type Cutover struct {
	Hour   int
	Minute int
}

// Validate checks that the cutover names a real wall-clock time.
func (c Cutover) Validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("cutover hour %d is out of range [0, 23]", c.Hour)
	}
	if c.Minute < 0 || c.Minute > 59 {
		return fmt.Errorf("cutover minute %d is out of range [0, 59]", c.Minute)
	}
	return nil
}

// On returns the cutover moment for the given calendar date, in the
// date's location.
func (c Cutover) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location())
}

// CompleteSlotDeliveriesCommand represents one sweep of the fulfillment
// scheduler. The observation time is carried explicitly so that the sweep is
// deterministic and testable; the caller decides what "now" means.
//
// Example:
//
//	cmd, err := NewCompleteSlotDeliveriesCommand(time.Now().In(loc))
//	if err != nil {
//	    return err
//	}
//	results, err := handler.Handle(ctx, cmd)
type CompleteSlotDeliveriesCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewCompleteSlotDeliveriesCommand creates a command to run one scheduler sweep
// observed at the given moment.
func NewCompleteSlotDeliveriesCommand(now time.Time) (CompleteSlotDeliveriesCommand, error) {
	if now.IsZero() {
		return CompleteSlotDeliveriesCommand{}, ErrNowIsRequired
	}

	return CompleteSlotDeliveriesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteSlotDeliveriesCommandIsNotConstructed if validation fails.
func (c CompleteSlotDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteSlotDeliveriesCommandIsNotConstructed)
}

// Now returns the sweep's observation time.
func (c CompleteSlotDeliveriesCommand) Now() time.Time {
	return c.now
}
