package commands

import (
	"context"
	"errors"

	"bundling/internal/core/domain/model/bundle"
	"bundling/internal/core/domain/services"
)

// ErrNoContainersInOrder is returned when a pack command targets an order
// without any top-level containers to place items into.
var ErrNoContainersInOrder = errors.New("order has no containers to pack into")

// PackOrderResult reports the outcome of a pack command.
type PackOrderResult struct {
	// Packed is the number of items moved into containers.
	Packed int

	// Rejected holds the names of the items no container could accept.
	// These items remain at the order's top level.
	Rejected []string
}

// PackOrderCommandHandler orchestrates the batch packing process.
// Collects the order's loose top-level items and uses the BoxPacker domain
// service to distribute them across the order's top-level containers, within
// a single transaction.
//
// Example:
//
//	handler := NewPackOrderCommandHandler(uowFactory)
//	cmd, _ := NewPackOrderCommand(orderID)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoContainersInOrder):
//	    log.Println("Nothing to pack into")
//	case err != nil:
//	    log.Printf("Packing failed: %v", err)
//	default:
//	    log.Printf("Packed %d items", result.Packed)
//	}
type PackOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPackOrderCommandHandler creates a handler for pack operations.
// Requires an OrderUoWFactory for transactional operations.
func NewPackOrderCommandHandler(uowFactory OrderUoWFactory) PackOrderCommandHandler {
	return PackOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the PackOrderCommand within a transaction.
// Detaches every loose top-level item from the order, places each into the
// first top-level container with remaining capacity, and re-attaches the
// items that fit nowhere. Capacity rejections are expected outcomes reported
// through the result, never errors. Rolls back on any error.
func (h *PackOrderCommandHandler) Handle(ctx context.Context, cmd PackOrderCommand) (PackOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PackOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PackOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return PackOrderResult{}, err
	}

	var items []*bundle.Item
	var boxes []*bundle.Container
	for _, el := range aggregate.Elements() {
		switch v := el.(type) {
		case *bundle.Item:
			items = append(items, v)
		case *bundle.Container:
			boxes = append(boxes, v)
		}
	}

	if len(boxes) == 0 {
		return PackOrderResult{}, ErrNoContainersInOrder
	}

	if len(items) == 0 {
		return PackOrderResult{}, nil
	}

	// Items must leave the top level before a container takes ownership,
	// otherwise the order would hold them twice.
	for _, item := range items {
		if removeErr := aggregate.RemoveElement(item); removeErr != nil {
			return PackOrderResult{}, removeErr
		}
	}

	packed, err := services.NewBoxPacker().Pack(items, boxes)
	if err != nil {
		return PackOrderResult{}, err
	}

	result := PackOrderResult{Packed: packed.Packed}
	for _, item := range packed.Rejected {
		if addErr := aggregate.AddElement(item); addErr != nil {
			return PackOrderResult{}, addErr
		}
		result.Rejected = append(result.Rejected, item.Name())
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return PackOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PackOrderResult{}, err
	}

	return result, nil
}
