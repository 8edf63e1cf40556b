package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Slot represents a named daily delivery window. Every delivery belongs to
// exactly one slot, and the fulfillment scheduler closes out each slot once
// its configured cutover time has passed.
type Slot int

const (
	// SlotUnknown represents an invalid or undefined slot.
	// This value (0) helps catch uninitialized Slot values.
	SlotUnknown Slot = iota

	// SlotLunch is the midday delivery window.
	SlotLunch

	// SlotDinner is the evening delivery window.
	SlotDinner
)

func getSlotStrings() map[Slot]string {
	return map[Slot]string{
		SlotUnknown: "Unknown",
		SlotLunch:   "Lunch",
		SlotDinner:  "Dinner",
	}
}

// AllSlots returns the valid slots in their daily order.
func AllSlots() []Slot {
	return []Slot{SlotLunch, SlotDinner}
}

// SlotFromString parses a slot from its string representation ("Lunch" or "Dinner").
// Returns an error for any other input.
func SlotFromString(s string) (Slot, error) {
	for slot, str := range getSlotStrings() {
		if slot != SlotUnknown && str == s {
			return slot, nil
		}
	}
	return SlotUnknown, errs.NewValueIsInvalidErrorWithCause("slot", fmt.Errorf("%q is not a valid slot", s))
}

// Validate checks if the Slot value is valid.
// Valid slots are SlotLunch and SlotDinner.
func (s Slot) Validate() error {
	if s != SlotLunch && s != SlotDinner {
		return errs.NewValueIsInvalidErrorWithCause("slot", fmt.Errorf("%d is not a valid slot", s))
	}
	return nil
}

// String returns the human-readable name of the slot.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Slot) String() string {
	if str, ok := getSlotStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
