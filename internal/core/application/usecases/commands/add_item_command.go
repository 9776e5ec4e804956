package commands

import (
	"errors"

	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// AddItemCommand represents a request to attach a priced item to an order.
// The item lands at the top level of the order, or inside the container
// named by parentName when one is given.
//
// Example:
//
//	cmd, err := NewAddItemCommand(orderID, "Mouse", price, "Electronics", "Peripherals")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	name       string
	price      kernel.Money
	category   string
	parentName string

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to an order.
// An empty category falls back to the item default, and an empty parentName
// places the item at the top level of the order.
func NewAddItemCommand(
	orderID kernel.UUID,
	name string,
	price kernel.Money,
	category string,
	parentName string,
) (AddItemCommand, error) {
	command := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setName(name),
	); err != nil {
		return AddItemCommand{}, err
	}

	command.price = price
	command.category = category
	command.parentName = parentName

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the ID of the order receiving the item.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the name of the item to be added.
func (c AddItemCommand) Name() string {
	return c.name
}

// Price returns the unit price of the item.
func (c AddItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the item category, which may be empty.
func (c AddItemCommand) Category() string {
	return c.category
}

// ParentName returns the name of the destination container.
// An empty string means the item goes to the top level of the order.
func (c AddItemCommand) ParentName() string {
	return c.parentName
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
