package queries

import (
	"context"

	"bundling/internal/core/ports"
)

// GetOrderStatisticsQueryHandler computes aggregate counters for an order.
// Rebuilds the order aggregate through the repository because item counts
// require walking nested containers.
//
// Example:
//
//	handler := NewGetOrderStatisticsQueryHandler(repo)
//	query, _ := NewGetOrderStatisticsQuery(orderID)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order statistics: %v", err)
//	    return err
//	}
type GetOrderStatisticsQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderStatisticsQueryHandler creates a handler for order statistics queries.
// Requires an order repository for aggregate retrieval.
func NewGetOrderStatisticsQueryHandler(repo ports.OrderRepository) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{repo: repo}
}

// Handle executes the query and returns the order's counters and price totals.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (GetOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	aggregate, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	stats := aggregate.Statistics()
	return GetOrderStatisticsQueryResponse{
		ID:               aggregate.ID(),
		TopLevelElements: stats.TopLevelElements,
		TotalItems:       stats.TotalItems,
		TotalContainers:  stats.TotalContainers,
		TotalPrice:       aggregate.TotalPrice(),
		AveragePrice:     stats.AveragePrice,
	}, nil
}
