package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bundling/internal/core/domain/model/bundle"
	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrElementNotFound is returned when a top-level element passed to
	// RemoveElement is not held by the order.
	ErrElementNotFound = errors.New("element not found in order")

	// ErrElementAlreadyAdded is returned when the element passed to
	// AddElement is already one of the order's top-level entries. Each
	// element appears at most once, so totals never count it twice.
	ErrElementAlreadyAdded = errors.New("element is already added to the order")
)

// Order is the aggregate root for a priced composition of bundles. It holds a
// flat, ordered list of top-level elements (items and containers, each
// possibly a whole subtree) and answers total-price, statistics, and summary
// queries over them.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-zero creation time
//   - Total price is always the live recursive sum of its elements' prices,
//     never a stale snapshot
//   - Elements are appended without a capacity limit; capacity applies only
//     inside containers
//   - Ownership is exclusive: an element held by a container, or already
//     present at the top level, cannot be appended again
//
// The order has a single lifecycle state: open for appending. There is no
// finalized transition; callers that need post-submission immutability stop
// routing commands to the order.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// createdAt records when the order was opened
	createdAt time.Time

	// elements holds the top-level entries in insertion order
	elements []bundle.Element

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new, empty Order. This is the only way to create a valid
// Order, ensuring all invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - createdAt: Creation timestamp (must not be the zero time)
//
// Example:
//
//	order, err := order.NewOrder(kernel.NewUUID(), time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(o.setID(id), o.setCreatedAt(createdAt)); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage together with its
// already-rebuilt top-level elements. The restored order behaves identically
// to one grown through AddElement calls.
func RestoreOrder(id kernel.UUID, createdAt time.Time, elements []bundle.Element) (*Order, error) {
	o, err := NewOrder(id, createdAt)
	if err != nil {
		return nil, err
	}

	for _, el := range elements {
		if addErr := o.AddElement(el); addErr != nil {
			return nil, addErr
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Elements returns a copy of the top-level elements in insertion order.
func (o *Order) Elements() []bundle.Element {
	elements := make([]bundle.Element, len(o.elements))
	copy(elements, o.elements)
	return elements
}

// AddElement appends an element to the order's top level. There is no
// capacity limit at the order level, but ownership stays exclusive: an
// element already living inside a container is rejected with
// bundle.ErrElementAlreadyAttached, and an element already among the
// order's top-level entries is rejected with ErrElementAlreadyAdded.
// Appending never snapshots the element's price; totals are always
// recomputed from the live tree.
func (o *Order) AddElement(element bundle.Element) error {
	if element == nil {
		return errs.NewValueIsRequiredError("element is required")
	}

	if err := element.Validate(); err != nil {
		return err
	}

	if bundle.IsAttached(element) {
		return bundle.ErrElementAlreadyAttached
	}

	for _, el := range o.elements {
		if el == element {
			return ErrElementAlreadyAdded
		}
	}

	o.elements = append(o.elements, element)
	return nil
}

// RemoveElement removes the first reference-identical top-level occurrence of
// element. Returns ErrElementNotFound when the element is not held directly
// by the order (elements nested inside containers are removed through their
// container instead).
func (o *Order) RemoveElement(element bundle.Element) error {
	if element == nil {
		return errs.NewValueIsRequiredError("element is required")
	}

	for idx, el := range o.elements {
		if el != element {
			continue
		}

		o.elements = append(o.elements[:idx], o.elements[idx+1:]...)
		return nil
	}

	return ErrElementNotFound
}

// FindElement walks the order's trees depth-first and returns the first
// element named name together with its owning container (nil when the match
// is top-level). Returns (nil, nil) when nothing matches.
func (o *Order) FindElement(name string) (bundle.Element, *bundle.Container) {
	return bundle.FindByName(o.elements, name)
}

// TotalPrice returns the sum of all top-level element prices, recursively
// recomputed on every call so that mutations inside nested containers are
// always reflected.
func (o *Order) TotalPrice() kernel.Money {
	total := kernel.ZeroMoney()
	for _, el := range o.elements {
		total = total.Add(el.Price())
	}

	return total
}

// Statistics aggregates simple counts and the average price over the order's
// top-level elements.
type Statistics struct {
	// TopLevelElements is the number of direct entries in the order.
	TopLevelElements int

	// TotalItems counts every item recursively, descending into containers.
	TotalItems int

	// TotalContainers counts containers among the top-level entries only.
	TotalContainers int

	// AveragePrice is the total price divided by the number of top-level
	// elements, or zero for an empty order.
	AveragePrice kernel.Money
}

// Statistics computes the order's counts and average price. The element sum
// type is matched exhaustively: every entry is either an item or a container.
func (o *Order) Statistics() Statistics {
	stats := Statistics{
		TopLevelElements: len(o.elements),
	}

	for _, el := range o.elements {
		switch v := el.(type) {
		case *bundle.Item:
			stats.TotalItems++
		case *bundle.Container:
			stats.TotalContainers++
			stats.TotalItems += len(v.AllItems())
		}
	}

	if len(o.elements) > 0 {
		stats.AveragePrice = o.TotalPrice().Div(len(o.elements))
	}

	return stats
}

// Summary renders a multi-section, human-readable report: a header with the
// order id and creation date, each top-level element's description, and the
// total price.
func (o *Order) Summary() string {
	lines := []string{
		fmt.Sprintf("Order %s", o.id),
		fmt.Sprintf("Created: %s", o.createdAt.Format(time.RFC3339)),
	}

	if len(o.elements) == 0 {
		lines = append(lines, "Elements: (none)")
	} else {
		lines = append(lines, "Elements:")
		for _, el := range o.elements {
			lines = append(lines, el.Describe(0))
		}
	}

	lines = append(lines, fmt.Sprintf("Total: %s", o.TotalPrice()))
	return strings.Join(lines, "\n")
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCreatedAt validates and sets the order's creation time.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt is required")
	}
	o.createdAt = createdAt
	return nil
}
