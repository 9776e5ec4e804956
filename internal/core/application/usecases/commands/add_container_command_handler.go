package commands

import (
	"context"

	"bundling/internal/core/domain/model/bundle"
)

// AddContainerCommandHandler handles the business logic for attaching containers to orders.
// Uses transactional operations to ensure data consistency when modifying order trees.
//
// Example:
//
//	handler := NewAddContainerCommandHandler(uowFactory)
//	cmd, _ := NewAddContainerCommand(orderID, "Shipment", handling, "", 0, "")
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Failed to add container: %v", err)
//	}
type AddContainerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddContainerCommandHandler creates a new handler for adding containers to orders.
// Requires an OrderUoWFactory for transactional operations.
func NewAddContainerCommandHandler(uowFactory OrderUoWFactory) AddContainerCommandHandler {
	return AddContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the AddContainerCommand within a transaction.
// Retrieves the order, builds an empty container, attaches it at the requested
// position, and persists the changes. Automatically rolls back on any error.
func (h *AddContainerCommandHandler) Handle(ctx context.Context, cmd AddContainerCommand) error {
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

	container, err := bundle.NewContainer(
		cmd.Name(),
		cmd.HandlingCost(),
		cmd.PackagingType(),
		cmd.MaxCapacity(),
	)
	if err != nil {
		return err
	}

	if err = attachElement(aggregate, container, cmd.ParentName()); err != nil {
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
