// Package kernel provides shared value objects used across all aggregates
// of the fulfillment domain.
//
// The package includes:
//   - UUID: an identity value object wrapping github.com/google/uuid
//   - Slot: a named daily delivery window (Lunch or Dinner)
//   - Location: geographic coordinates for driver positions
//
// All value objects are immutable and validate themselves on construction,
// so aggregates holding them never carry invalid state.
package kernel
