package queries

import (
	"errors"

	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery retrieves aggregate counters for a single order.
//
// Example:
//
//	query, err := NewGetOrderStatisticsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderStatisticsQueryHandler(repo)
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get statistics: %w", err)
//	}
//	fmt.Printf("%d items across %d top-level elements\n", stats.TotalItems, stats.TopLevelElements)
type GetOrderStatisticsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a query to retrieve order statistics.
// Validates that the order ID is a proper UUID.
func NewGetOrderStatisticsQuery(orderID kernel.UUID) (GetOrderStatisticsQuery, error) {
	query := GetOrderStatisticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderStatisticsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatisticsQueryIsNotConstructed if validation fails.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// OrderID returns the ID of the order to analyze.
func (q GetOrderStatisticsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderStatisticsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderStatisticsQueryResponse represents order counters in the read model.
// TotalItems counts items recursively through nested containers, while
// TotalContainers counts only top-level containers. AveragePrice is the
// recursive total divided by the number of top-level elements.
type GetOrderStatisticsQueryResponse struct {
	ID               kernel.UUID
	TopLevelElements int
	TotalItems       int
	TotalContainers  int
	TotalPrice       kernel.Money
	AveragePrice     kernel.Money
}
