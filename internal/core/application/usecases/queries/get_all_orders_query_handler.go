package queries

import (
	"context"
	"time"

	"bundling/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the order list from the database.
// Aggregates element prices in SQL instead of rebuilding domain trees,
// keeping the listing cheap for large order books.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with price totals.
// Results are sorted by creation time for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.created_at,
			COALESCE(SUM(e.price), 0) AS total_price,
			COUNT(e.id) FILTER (WHERE e.parent_id IS NULL) AS top_level_elements
		FROM orders o
		LEFT JOIN order_elements e ON e.order_id = o.id
		GROUP BY o.id, o.created_at
		ORDER BY o.created_at, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var id uuid.UUID
		var createdAt time.Time
		var totalPrice decimal.Decimal
		var topLevel int

		err = rows.Scan(
			&id,
			&createdAt,
			&totalPrice,
			&topLevel,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		total, moneyErr := kernel.NewMoney(totalPrice)
		if moneyErr != nil {
			return nil, moneyErr
		}
		orderResp.TotalPrice = total
		orderResp.CreatedAt = createdAt
		orderResp.TopLevelElements = topLevel
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
