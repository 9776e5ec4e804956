// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the bundling service. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - BoxPacker: A domain service that distributes batches of items across containers
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
