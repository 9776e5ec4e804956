package ports

import (
	"context"

	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and listing orders together with
// their complete element trees.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// stored element tree with the current one.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its element tree rebuilt.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order ordered by creation time.
	// Used by reporting workflows that walk the full order book.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
