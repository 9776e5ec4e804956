package commands

import (
	"context"

	"bundling/internal/pkg/errs"
)

// RemoveElementCommandHandler handles the business logic for detaching elements from orders.
// Uses transactional operations to ensure data consistency when modifying order trees.
//
// Example:
//
//	handler := NewRemoveElementCommandHandler(uowFactory)
//	cmd, _ := NewRemoveElementCommand(orderID, "Peripherals")
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Failed to remove element: %v", err)
//	}
type RemoveElementCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveElementCommandHandler creates a new handler for removing elements from orders.
// Requires an OrderUoWFactory for transactional operations.
func NewRemoveElementCommandHandler(uowFactory OrderUoWFactory) RemoveElementCommandHandler {
	return RemoveElementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the RemoveElementCommand within a transaction.
// Locates the named element in the order tree, detaches it from its parent
// (or the order itself), and persists the changes. Rolls back on any error.
func (h *RemoveElementCommandHandler) Handle(ctx context.Context, cmd RemoveElementCommand) error {
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

	element, parent := aggregate.FindElement(cmd.ElementName())
	if element == nil {
		return errs.NewObjectNotFoundError("elementName", cmd.ElementName())
	}

	if parent == nil {
		err = aggregate.RemoveElement(element)
	} else {
		err = parent.Remove(element)
	}
	if err != nil {
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
