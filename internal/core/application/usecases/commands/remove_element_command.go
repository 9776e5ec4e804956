package commands

import (
	"errors"

	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/guard"
)

var ErrRemoveElementCommandIsNotConstructed = errors.New(
	"RemoveElementCommand must be created via NewRemoveElementCommand constructor",
)

// RemoveElementCommand represents a request to detach an element from an order.
// The element is located by name anywhere in the order's tree; the first match
// in depth-first order is removed together with its nested contents.
//
// Example:
//
//	cmd, err := NewRemoveElementCommand(orderID, "Mouse")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewRemoveElementCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to remove element: %w", err)
//	}
type RemoveElementCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	elementName string

	guard guard.ConstructorGuard
}

// NewRemoveElementCommand creates a command to remove a named element from an order.
// Validates that the order ID is a proper UUID and the element name is not empty.
func NewRemoveElementCommand(orderID kernel.UUID, elementName string) (RemoveElementCommand, error) {
	command := RemoveElementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setElementName(elementName),
	); err != nil {
		return RemoveElementCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveElementCommandIsNotConstructed if validation fails.
func (c RemoveElementCommand) Validate() error {
	return c.guard.Validate(ErrRemoveElementCommandIsNotConstructed)
}

// OrderID returns the ID of the order to remove the element from.
func (c RemoveElementCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ElementName returns the name of the element to remove.
func (c RemoveElementCommand) ElementName() string {
	return c.elementName
}

func (c *RemoveElementCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveElementCommand) setElementName(elementName string) error {
	if elementName == "" {
		return ErrNameIsRequired
	}

	c.elementName = elementName
	return nil
}
