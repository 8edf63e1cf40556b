// Package delivery provides the Delivery aggregate and its status state
// machine, the heart of the fulfillment engine.
//
// The package includes:
//   - Delivery: one scheduled delivery occurrence of an order, carrying its
//     target date, slot, optional driver/route references and lifecycle timestamps
//   - Status: the state machine governing legal status transitions
//
// Key business rules:
//   - Pending -> Assigned -> PickedUp -> InTransit -> NearDestination -> Delivered,
//     one step at a time through the manual API
//   - Failed and Cancelled are reachable from any non-terminal status
//   - terminal statuses (Delivered, Failed, Cancelled) absorb: no further moves
//   - the fulfillment scheduler may jump any non-terminal delivery straight to
//     Delivered once the slot cutover has passed
//   - entering a terminal status stamps completedAt; the assigned driver must be
//     released in the same transaction by the caller
package delivery
