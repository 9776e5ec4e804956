package commands_test

import (
	"testing"

	"bundling/internal/core/application/usecases/commands"
	"bundling/internal/core/domain/model/bundle"
	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPackOrderCommandHandler_Handle_PacksLooseItems(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	box, err := bundle.NewContainer("Peripherals", mustMoney(t, "5.00"), "", 5)
	require.NoError(t, err)
	require.NoError(t, aggregate.AddElement(box))
	require.NoError(t, aggregate.AddElement(mustPackItem(t, "Mouse", "25.99")))
	require.NoError(t, aggregate.AddElement(mustPackItem(t, "Keyboard", "89.99")))
	totalBefore := aggregate.TotalPrice()

	cmd, _ := commands.NewPackOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Packed)
	assert.Empty(t, result.Rejected)
	require.Len(t, aggregate.Elements(), 1)
	assert.Equal(t, 2, box.ElementCount())
	assert.True(t, aggregate.TotalPrice().IsEqual(totalBefore))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_RejectedItemsStayTopLevel(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	box, err := bundle.NewContainer("Tiny", mustMoney(t, "1.00"), "", 1)
	require.NoError(t, err)
	require.NoError(t, aggregate.AddElement(box))
	require.NoError(t, aggregate.AddElement(mustPackItem(t, "Mouse", "25.99")))
	require.NoError(t, aggregate.AddElement(mustPackItem(t, "Keyboard", "89.99")))
	totalBefore := aggregate.TotalPrice()

	cmd, _ := commands.NewPackOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Packed)
	assert.Equal(t, []string{"Keyboard"}, result.Rejected)
	require.Len(t, aggregate.Elements(), 2)
	assert.Equal(t, 1, box.ElementCount())
	assert.True(t, aggregate.TotalPrice().IsEqual(totalBefore))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_NoContainers(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	require.NoError(t, aggregate.AddElement(mustPackItem(t, "Mouse", "25.99")))

	cmd, _ := commands.NewPackOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoContainersInOrder)
	require.Len(t, aggregate.Elements(), 1)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_NothingToPack(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	box, err := bundle.NewContainer("Peripherals", mustMoney(t, "5.00"), "", 5)
	require.NoError(t, err)
	require.NoError(t, aggregate.AddElement(box))

	cmd, _ := commands.NewPackOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Packed)
	assert.Empty(t, result.Rejected)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewPackOrderCommand(id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PackOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewPackOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func mustPackItem(t *testing.T, name, price string) *bundle.Item {
	t.Helper()
	item, err := bundle.NewItem(name, mustMoney(t, price), "")
	require.NoError(t, err)
	return item
}
