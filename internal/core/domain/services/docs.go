// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AssignmentPolicy: A domain service that assigns drivers to deliveries,
//     enforcing driver availability and route capacity rules
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
