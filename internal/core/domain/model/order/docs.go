// Package order provides domain entities and business logic for order management
// in the bundling service. It implements the Order aggregate root that collects
// top-level bundle elements and answers pricing queries over them.
//
// The package includes:
//   - Order: The aggregate root that manages order identity and its top-level elements
//   - Statistics: Aggregated counts and the average price across top-level elements
//
// Key business rules:
//   - Orders must have a valid unique identifier and a non-zero creation time
//   - The total price is the live recursive sum over all elements, never cached
//   - The order level has no capacity limit; capacity applies inside containers
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
