package bundle

import (
	"errors"
	"fmt"
	"strings"

	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/errs"
	"bundling/internal/pkg/guard"
)

// DefaultCategory is assigned to items constructed without an explicit category.
const DefaultCategory = "General"

// ErrItemIsNotConstructed indicates that an Item was not created through the
// NewItem constructor function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is the leaf of a bundle tree: a named, priced unit that cannot contain
// other elements. Items are immutable after construction; their price is fixed
// and Price is a pure, side-effect-free read, safe for concurrent use.
//
// Invariants:
//   - Name is never empty
//   - Unit price is non-negative (enforced by kernel.Money)
//   - Category defaults to DefaultCategory when not provided
//
// Example:
//
//	price, _ := kernel.MoneyFromString("25.99")
//	mouse, err := bundle.NewItem("Mouse", price, "")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(mouse.Describe(0)) // Mouse (General): 25.99
type Item struct {
	// name identifies the item within descriptions and reports
	name string

	// unitPrice is the fixed, non-negative price of the item
	unitPrice kernel.Money

	// category groups items for reporting, defaults to DefaultCategory
	category string

	// parent is the container currently holding the item, nil when unowned
	parent *Container

	// guard ensures the item was properly initialized
	guard guard.ConstructorGuard
}

// NewItem creates an immutable leaf item.
//
// Parameters:
//   - name: item name (must not be empty)
//   - unitPrice: the fixed price (Money is non-negative by construction)
//   - category: reporting category; empty string defaults to DefaultCategory
//
// Returns the item or an aggregated validation error.
func NewItem(name string, unitPrice kernel.Money, category string) (*Item, error) {
	item := &Item{
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setName(name), item.setCategory(category)); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the item's name.
func (i *Item) Name() string {
	return i.name
}

// Category returns the item's reporting category.
func (i *Item) Category() string {
	return i.category
}

// UnitPrice returns the item's fixed price.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Price returns the unit price unchanged. Leaf pricing identity: for an item
// with unit price p, Price() == p.
func (i *Item) Price() kernel.Money {
	return i.unitPrice
}

// Describe returns a single line showing name, category, and price formatted
// to two decimal places, indented by level nesting units.
func (i *Item) Describe(level int) string {
	return fmt.Sprintf("%s%s (%s): %s", strings.Repeat(IndentStep, level), i.name, i.category, i.unitPrice)
}

// IsEqual compares two items structurally: same name, category, and price.
// Items are value-like leaves without identity, so structural equality is the
// natural comparison for removal and deduplication.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil &&
		i.name == other.name &&
		i.category == other.category &&
		i.unitPrice.IsEqual(other.unitPrice)
}

func (i *Item) isElement() {}

func (i *Item) setOwner(owner *Container) {
	i.parent = owner
}

func (i *Item) owner() *Container {
	return i.parent
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		category = DefaultCategory
	}

	i.category = category
	return nil
}
