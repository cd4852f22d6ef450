// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the donation platform. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Fulfillment: A domain service that keeps a donation's status in lockstep
//     with the order fulfilling it
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
