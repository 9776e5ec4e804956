package commands

import (
	"context"

	"bundling/internal/core/domain/model/bundle"
)

// AddItemCommandHandler handles the business logic for attaching items to orders.
// Uses transactional operations to ensure data consistency when modifying order trees.
//
// Example:
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	cmd, _ := NewAddItemCommand(orderID, "Keyboard", price, "", "Peripherals")
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Failed to add item: %v", err)
//	}
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a new handler for adding items to orders.
// Requires an OrderUoWFactory for transactional operations.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the AddItemCommand within a transaction.
// Retrieves the order, builds the item, attaches it at the requested position,
// and persists the changes. Automatically rolls back on any error.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	item, err := bundle.NewItem(cmd.Name(), cmd.Price(), cmd.Category())
	if err != nil {
		return err
	}

	if err = attachElement(aggregate, item, cmd.ParentName()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
