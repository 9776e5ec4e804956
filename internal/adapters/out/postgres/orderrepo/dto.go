// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fmt"
	"sort"
	"time"

	"bundling/internal/core/domain/model/bundle"
	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Element kinds stored in the kind column of order_elements.
const (
	kindItem      = "item"
	kindContainer = "container"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Element trees are stored separately in order_elements as adjacency rows.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ElementDTO represents one node of an order's element tree.
// ParentID is nil for top-level elements and references another row otherwise.
// Position preserves insertion order among siblings. Price holds the item unit
// price for items and the handling cost for containers.
type ElementDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;index"`
	ParentID      *uuid.UUID `gorm:"type:uuid;index"`
	Kind          string     `gorm:"type:varchar(16)"`
	Position      int
	Name          string
	Category      string
	PackagingType string
	MaxCapacity   int
	Price         decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for order element rows.
func (ElementDTO) TableName() string {
	return "order_elements"
}

// fromDomain converts an order domain aggregate to its database representation.
// Walks the element tree depth-first, producing one row per node with fresh
// row identifiers and sibling positions.
func fromDomain(aggregate *order.Order) (OrderDTO, []ElementDTO) {
	dto := OrderDTO{
		ID:        aggregate.ID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
	}

	rows := make([]ElementDTO, 0)
	for position, element := range aggregate.Elements() {
		rows = appendElementRows(rows, dto.ID, nil, position, element)
	}

	return dto, rows
}

func appendElementRows(
	rows []ElementDTO,
	orderID uuid.UUID,
	parentID *uuid.UUID,
	position int,
	element bundle.Element,
) []ElementDTO {
	rowID := uuid.New()

	switch typed := element.(type) {
	case *bundle.Item:
		rows = append(rows, ElementDTO{
			ID:       rowID,
			OrderID:  orderID,
			ParentID: parentID,
			Kind:     kindItem,
			Position: position,
			Name:     typed.Name(),
			Category: typed.Category(),
			Price:    typed.UnitPrice().Decimal(),
		})
	case *bundle.Container:
		rows = append(rows, ElementDTO{
			ID:            rowID,
			OrderID:       orderID,
			ParentID:      parentID,
			Kind:          kindContainer,
			Position:      position,
			Name:          typed.Name(),
			PackagingType: typed.PackagingType(),
			MaxCapacity:   typed.MaxCapacity(),
			Price:         typed.HandlingCost().Decimal(),
		})

		for childPosition, child := range typed.Contents() {
			rows = appendElementRows(rows, orderID, &rowID, childPosition, child)
		}
	}

	return rows
}

// toDomain converts database rows back to an order domain aggregate.
// Rebuilds the element tree from adjacency rows using the Restore constructors.
func toDomain(dto OrderDTO, rows []ElementDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	children := make(map[uuid.UUID][]ElementDTO)
	roots := make([]ElementDTO, 0)
	for _, row := range rows {
		if row.ParentID == nil {
			roots = append(roots, row)
			continue
		}
		children[*row.ParentID] = append(children[*row.ParentID], row)
	}

	elements, err := buildElements(roots, children)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.CreatedAt, elements)
}

func buildElements(rows []ElementDTO, children map[uuid.UUID][]ElementDTO) ([]bundle.Element, error) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Position < rows[j].Position
	})

	elements := make([]bundle.Element, 0, len(rows))
	for _, row := range rows {
		element, err := buildElement(row, children)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}

	return elements, nil
}

func buildElement(row ElementDTO, children map[uuid.UUID][]ElementDTO) (bundle.Element, error) {
	price, err := kernel.NewMoney(row.Price)
	if err != nil {
		return nil, err
	}

	switch row.Kind {
	case kindItem:
		return bundle.NewItem(row.Name, price, row.Category)
	case kindContainer:
		contents, contentsErr := buildElements(children[row.ID], children)
		if contentsErr != nil {
			return nil, contentsErr
		}
		return bundle.RestoreContainer(row.Name, price, row.PackagingType, row.MaxCapacity, contents)
	default:
		return nil, fmt.Errorf("unknown element kind: %s", row.Kind)
	}
}
