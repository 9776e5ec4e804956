package bundle

import (
	"errors"
	"fmt"
	"strings"

	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/errs"
	"bundling/internal/pkg/guard"
)

// DefaultPackagingType is assigned to containers constructed without an
// explicit packaging type.
const DefaultPackagingType = "Standard"

// DefaultMaxCapacity is the maximum number of direct children a container
// accepts when no explicit capacity is provided.
const DefaultMaxCapacity = 10

var (
	// ErrCapacityExceeded indicates that an Add would push a container past
	// its maximum capacity. The container is left unchanged; callers are
	// expected to report the rejection and continue with remaining elements.
	ErrCapacityExceeded = errors.New("container capacity exceeded")

	// ErrElementNotFound indicates that the element passed to Remove is not
	// a direct child of the container.
	ErrElementNotFound = errors.New("element not found in container")

	// ErrElementAlreadyAttached indicates that the element passed to Add is
	// already owned by a container. Each element has a single owner, which
	// keeps the structure a tree with no shared subtrees.
	ErrElementAlreadyAttached = errors.New("element is already attached to a container")

	// ErrCycleDetected indicates that the element passed to Add is the
	// container itself or transitively contains it; inserting it would make
	// Price recurse forever.
	ErrCycleDetected = errors.New("adding element would create a cycle")

	// ErrContainerIsNotConstructed indicates that the Container was not
	// created through the NewContainer constructor function.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")
)

// Container is the composite of a bundle tree: a named grouping node that owns
// an ordered sequence of items and nested containers, carries its own handling
// cost, and holds at most maxCapacity direct children.
//
// Key business rules:
//   - len(contents) <= maxCapacity at all times; a violating Add is rejected,
//     never truncated
//   - price = handlingCost + sum of children prices, recomputed on every call
//     (no caching, so mutations are always reflected)
//   - contents keep insertion order, which is significant for descriptions
//   - an element has at most one owner and a container never contains itself,
//     directly or transitively
//
// Example:
//
//	handling, _ := kernel.MoneyFromString("5.00")
//	box, err := bundle.NewContainer("Peripherals", handling, "", 5)
//	if err != nil {
//	    return err
//	}
//	if err := box.Add(mouse); err != nil {
//	    log.Printf("could not add %s: %v", mouse.Name(), err)
//	}
//	fmt.Println(box.Price()) // 30.99
type Container struct {
	// name identifies the container within descriptions and reports
	name string

	// handlingCost is the container's own non-negative base cost
	handlingCost kernel.Money

	// packagingType describes the physical packaging, defaults to DefaultPackagingType
	packagingType string

	// maxCapacity bounds the number of direct children (positive)
	maxCapacity int

	// contents holds direct children in insertion order
	contents []Element

	// parent is the container currently holding this one, nil when unowned
	parent *Container

	// guard ensures the container was properly initialized
	guard guard.ConstructorGuard
}

// NewContainer creates an empty container.
//
// Parameters:
//   - name: container name (must not be empty)
//   - handlingCost: the container's own base cost (non-negative by construction)
//   - packagingType: physical packaging; empty string defaults to DefaultPackagingType
//   - maxCapacity: maximum number of direct children; zero defaults to
//     DefaultMaxCapacity, negative values are rejected
//
// Returns the container or an aggregated validation error.
func NewContainer(name string, handlingCost kernel.Money, packagingType string, maxCapacity int) (*Container, error) {
	container := &Container{
		handlingCost: handlingCost,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		container.setName(name),
		container.setPackagingType(packagingType),
		container.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	return container, nil
}

// RestoreContainer reconstructs a container from persistent storage together
// with its already-rebuilt children. Unlike NewContainer it accepts initial
// contents, re-attaching each child to the restored container. The restored
// container behaves identically to one grown through Add calls.
//
// Returns a validation error if any parameter is invalid, if the contents
// exceed maxCapacity, or if any child is already owned elsewhere.
func RestoreContainer(
	name string,
	handlingCost kernel.Money,
	packagingType string,
	maxCapacity int,
	contents []Element,
) (*Container, error) {
	container, err := NewContainer(name, handlingCost, packagingType, maxCapacity)
	if err != nil {
		return nil, err
	}

	for _, el := range contents {
		if addErr := container.Add(el); addErr != nil {
			return nil, addErr
		}
	}

	return container, nil
}

// Validate ensures the Container was properly constructed through NewContainer.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// Name returns the container's name.
func (c *Container) Name() string {
	return c.name
}

// HandlingCost returns the container's own base cost.
func (c *Container) HandlingCost() kernel.Money {
	return c.handlingCost
}

// PackagingType returns the container's packaging type.
func (c *Container) PackagingType() string {
	return c.packagingType
}

// MaxCapacity returns the maximum number of direct children.
func (c *Container) MaxCapacity() int {
	return c.maxCapacity
}

// Contents returns a copy of the direct children in insertion order.
// The copy supports read-only traversal by exporters and persistence without
// exposing the container's internal slice to mutation.
func (c *Container) Contents() []Element {
	contents := make([]Element, len(c.contents))
	copy(contents, c.contents)
	return contents
}

// ElementCount returns the number of direct children (non-recursive).
func (c *Container) ElementCount() int {
	return len(c.contents)
}

// IsFull reports whether the container has reached its maximum capacity.
func (c *Container) IsFull() bool {
	return len(c.contents) >= c.maxCapacity
}

// Add appends an element to the container's contents.
//
// Business rules enforced:
//   - the element must be a properly constructed Item or Container
//   - the container must not be full (ErrCapacityExceeded; contents unchanged)
//   - the element must not already be owned by a container (ErrElementAlreadyAttached)
//   - the element must not be, or contain, this container (ErrCycleDetected)
//
// A failed Add leaves the container fully usable; batch insertion code is
// expected to report the error and continue with the remaining elements.
//
// Example:
//
//	if err := box.Add(item); err != nil {
//	    if errors.Is(err, bundle.ErrCapacityExceeded) {
//	        rejected = append(rejected, item)
//	        continue
//	    }
//	    return err
//	}
func (c *Container) Add(element Element) error {
	if element == nil {
		return errs.NewValueIsRequiredError("element is required")
	}

	if err := element.Validate(); err != nil {
		return err
	}

	if c.IsFull() {
		return ErrCapacityExceeded
	}

	if element.owner() != nil {
		return ErrElementAlreadyAttached
	}

	if nested, ok := element.(*Container); ok {
		if nested == c || nested.contains(c) {
			return ErrCycleDetected
		}
	}

	element.setOwner(c)
	c.contents = append(c.contents, element)
	return nil
}

// Remove removes the first reference-identical occurrence of element from the
// container's direct children; items additionally match structurally (same
// name, category, and price). Returns ErrElementNotFound when no occurrence
// exists. The removed element is detached and may be re-inserted elsewhere.
func (c *Container) Remove(element Element) error {
	if element == nil {
		return errs.NewValueIsRequiredError("element is required")
	}

	for idx, child := range c.contents {
		if !matches(child, element) {
			continue
		}

		child.setOwner(nil)
		c.contents = append(c.contents[:idx], c.contents[idx+1:]...)
		return nil
	}

	return ErrElementNotFound
}

// Price returns handlingCost plus the sum of all children prices, evaluated
// depth-first, left-to-right. The value is recomputed on every call so that
// mutations deeper in the tree are always reflected; trees are expected to
// stay shallow, making the re-walk cheap.
func (c *Container) Price() kernel.Money {
	total := c.handlingCost
	for _, child := range c.contents {
		total = total.Add(child.Price())
	}

	return total
}

// AllItems returns every item reachable in the container's subtree in
// depth-first, left-to-right order, descending into nested containers.
func (c *Container) AllItems() []*Item {
	items := make([]*Item, 0, len(c.contents))
	for _, child := range c.contents {
		switch v := child.(type) {
		case *Item:
			items = append(items, v)
		case *Container:
			items = append(items, v.AllItems()...)
		}
	}

	return items
}

// Describe produces a multi-line, human-readable dump of the subtree: one
// header line for the container itself showing name, packaging type, handling
// cost, and occupancy ("n/max elements", or "(empty)" when there are no
// contents), followed by each child's description one level deeper, in
// insertion order.
func (c *Container) Describe(level int) string {
	indent := strings.Repeat(IndentStep, level)

	if len(c.contents) == 0 {
		return fmt.Sprintf("%s%s [%s]: handling %s (empty)", indent, c.name, c.packagingType, c.handlingCost)
	}

	lines := make([]string, 0, len(c.contents)+1)
	lines = append(lines, fmt.Sprintf("%s%s [%s]: handling %s, %d/%d elements",
		indent, c.name, c.packagingType, c.handlingCost, len(c.contents), c.maxCapacity))

	for _, child := range c.contents {
		lines = append(lines, child.Describe(level+1))
	}

	return strings.Join(lines, "\n")
}

// contains reports whether target is reachable anywhere in the container's
// subtree. Used by Add to reject insertions that would create a cycle.
func (c *Container) contains(target Element) bool {
	for _, child := range c.contents {
		if child == target {
			return true
		}
		if nested, ok := child.(*Container); ok && nested.contains(target) {
			return true
		}
	}

	return false
}

// matches implements Remove's equality: reference identity for any element,
// structural equality for items.
func matches(child Element, element Element) bool {
	if child == element {
		return true
	}

	childItem, childOK := child.(*Item)
	wantItem, wantOK := element.(*Item)
	return childOK && wantOK && childItem.IsEqual(wantItem)
}

func (c *Container) isElement() {}

func (c *Container) setOwner(owner *Container) {
	c.parent = owner
}

func (c *Container) owner() *Container {
	return c.parent
}

func (c *Container) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	c.name = name
	return nil
}

func (c *Container) setPackagingType(packagingType string) error {
	if packagingType == "" {
		packagingType = DefaultPackagingType
	}

	c.packagingType = packagingType
	return nil
}

func (c *Container) setMaxCapacity(maxCapacity int) error {
	if maxCapacity == 0 {
		maxCapacity = DefaultMaxCapacity
	}

	if maxCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity is invalid",
			fmt.Errorf("%d is not greater than 0", maxCapacity),
		)
	}

	c.maxCapacity = maxCapacity
	return nil
}
