package queries

import (
	"context"

	"bundling/internal/core/ports"
)

// GetOrderSummaryQueryHandler renders the textual summary of an order.
// Rebuilds the order aggregate through the repository because the summary
// format depends on the recursive element tree.
//
// Example:
//
//	handler := NewGetOrderSummaryQueryHandler(repo)
//	query, _ := NewGetOrderSummaryQuery(orderID)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order summary: %v", err)
//	    return err
//	}
type GetOrderSummaryQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
// Requires an order repository for aggregate retrieval.
func NewGetOrderSummaryQueryHandler(repo ports.OrderRepository) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{repo: repo}
}

// Handle executes the query and returns the rendered summary together with
// the recursive price total.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	aggregate, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	return GetOrderSummaryQueryResponse{
		ID:         aggregate.ID(),
		CreatedAt:  aggregate.CreatedAt(),
		Summary:    aggregate.Summary(),
		TotalPrice: aggregate.TotalPrice(),
	}, nil
}
