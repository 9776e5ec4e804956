package commands

import (
	"errors"

	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/guard"
)

var (
	ErrAddContainerCommandIsNotConstructed = errors.New(
		"AddContainerCommand must be created via NewAddContainerCommand constructor",
	)
	ErrMaxCapacityIsInvalid = errors.New("max capacity must not be negative")
)

// AddContainerCommand represents a request to attach an empty container to an order.
// The container lands at the top level of the order, or inside the container
// named by parentName when one is given.
//
// Example:
//
//	cmd, err := NewAddContainerCommand(orderID, "Peripherals", handling, "Box", 5, "")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewAddContainerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add container: %w", err)
//	}
type AddContainerCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	name          string
	handlingCost  kernel.Money
	packagingType string
	maxCapacity   int
	parentName    string

	guard guard.ConstructorGuard
}

// NewAddContainerCommand creates a command to add a container to an order.
// Empty packagingType and zero maxCapacity fall back to the container
// defaults. An empty parentName places the container at the top level.
func NewAddContainerCommand(
	orderID kernel.UUID,
	name string,
	handlingCost kernel.Money,
	packagingType string,
	maxCapacity int,
	parentName string,
) (AddContainerCommand, error) {
	command := AddContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setName(name),
		command.setMaxCapacity(maxCapacity),
	); err != nil {
		return AddContainerCommand{}, err
	}

	command.handlingCost = handlingCost
	command.packagingType = packagingType
	command.parentName = parentName

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddContainerCommandIsNotConstructed if validation fails.
func (c AddContainerCommand) Validate() error {
	return c.guard.Validate(ErrAddContainerCommandIsNotConstructed)
}

// OrderID returns the ID of the order receiving the container.
func (c AddContainerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the name of the container to be added.
func (c AddContainerCommand) Name() string {
	return c.name
}

// HandlingCost returns the flat handling cost of the container.
func (c AddContainerCommand) HandlingCost() kernel.Money {
	return c.handlingCost
}

// PackagingType returns the packaging type, which may be empty.
func (c AddContainerCommand) PackagingType() string {
	return c.packagingType
}

// MaxCapacity returns the requested capacity limit.
// Zero means the container default applies.
func (c AddContainerCommand) MaxCapacity() int {
	return c.maxCapacity
}

// ParentName returns the name of the destination container.
// An empty string means the container goes to the top level of the order.
func (c AddContainerCommand) ParentName() string {
	return c.parentName
}

func (c *AddContainerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddContainerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddContainerCommand) setMaxCapacity(maxCapacity int) error {
	if maxCapacity < 0 {
		return ErrMaxCapacityIsInvalid
	}

	c.maxCapacity = maxCapacity
	return nil
}
