// Package bundle provides the recursive composition tree used to price
// hierarchical bundles: items purchased directly and items grouped inside
// containers, arbitrarily nested.
//
// The package includes:
//   - Element: The closed set of tree nodes, sealed to the two in-package variants
//   - Item: The terminal leaf, a named priced unit with a fixed cost and category
//   - Container: The composite node with its own handling cost and a bounded capacity
//
// Key business rules:
//   - A container's price is its handling cost plus the recursive sum of its
//     contents' prices, recomputed on demand
//   - A container never holds more direct children than its maximum capacity;
//     a violating insertion is rejected, not truncated
//   - Every element has at most one owner, and a container can never contain
//     itself, so the structure is always a finite tree
//   - Contents preserve insertion order, which descriptions rely on
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package bundle
