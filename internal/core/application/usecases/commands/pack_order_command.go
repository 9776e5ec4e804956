package commands

import (
	"errors"

	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/guard"
)

var ErrPackOrderCommandIsNotConstructed = errors.New(
	"PackOrderCommand must be created via NewPackOrderCommand constructor",
)

// PackOrderCommand triggers batch packing of an order's loose items.
// Every top-level item is distributed across the order's top-level containers
// in first-fit order; items no container can accept stay at the top level.
//
// Example:
//
//	cmd, err := NewPackOrderCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewPackOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to pack order: %w", err)
//	}
//	log.Printf("packed %d items, %d left over", result.Packed, len(result.Rejected))
type PackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPackOrderCommand creates a command to pack an order's loose items.
// Validates that the order ID is a proper UUID.
func NewPackOrderCommand(orderID kernel.UUID) (PackOrderCommand, error) {
	command := PackOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return PackOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPackOrderCommandIsNotConstructed if validation fails.
func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

// OrderID returns the ID of the order to pack.
func (c PackOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PackOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
