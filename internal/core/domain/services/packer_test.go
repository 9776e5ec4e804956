package services_test

import (
	"fmt"
	"testing"

	"bundling/internal/core/domain/model/bundle"
	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string) *bundle.Item {
	t.Helper()
	price, err := kernel.MoneyFromString("1.00")
	require.NoError(t, err)
	item, err := bundle.NewItem(name, price, "")
	require.NoError(t, err)
	return item
}

func mustBox(t *testing.T, name string, capacity int) *bundle.Container {
	t.Helper()
	box, err := bundle.NewContainer(name, kernel.ZeroMoney(), "", capacity)
	require.NoError(t, err)
	return box
}

func TestBoxPacker_Pack(t *testing.T) {
	packer := services.NewBoxPacker()

	t.Run("should place all items when capacity suffices", func(t *testing.T) {
		box := mustBox(t, "Box", 5)
		items := []*bundle.Item{mustItem(t, "A"), mustItem(t, "B"), mustItem(t, "C")}

		result, err := packer.Pack(items, []*bundle.Container{box})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Packed)
		assert.Empty(t, result.Rejected)
		assert.Equal(t, 3, box.ElementCount())
	})

	t.Run("should spill into the next box when the first fills up", func(t *testing.T) {
		small := mustBox(t, "Small", 2)
		big := mustBox(t, "Big", 10)
		items := make([]*bundle.Item, 0, 5)
		for i := 0; i < 5; i++ {
			items = append(items, mustItem(t, fmt.Sprintf("Item-%d", i)))
		}

		result, err := packer.Pack(items, []*bundle.Container{small, big})

		require.NoError(t, err)
		assert.Equal(t, 5, result.Packed)
		assert.Empty(t, result.Rejected)
		assert.Equal(t, 2, small.ElementCount())
		assert.Equal(t, 3, big.ElementCount())
	})

	t.Run("should continue past full boxes and collect unplaced items", func(t *testing.T) {
		box := mustBox(t, "Tiny", 1)
		first := mustItem(t, "First")
		second := mustItem(t, "Second")
		third := mustItem(t, "Third")

		result, err := packer.Pack([]*bundle.Item{first, second, third}, []*bundle.Container{box})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Packed)
		require.Len(t, result.Rejected, 2)
		assert.Same(t, second, result.Rejected[0])
		assert.Same(t, third, result.Rejected[1])
		assert.Equal(t, 1, box.ElementCount())
	})

	t.Run("should fail without boxes", func(t *testing.T) {
		_, err := packer.Pack([]*bundle.Item{mustItem(t, "A")}, nil)

		require.ErrorIs(t, err, services.ErrNoBoxesProvided)
	})

	t.Run("should fail on unconstructed item", func(t *testing.T) {
		box := mustBox(t, "Box", 5)

		_, err := packer.Pack([]*bundle.Item{{}}, []*bundle.Container{box})

		require.Error(t, err)
		assert.Equal(t, bundle.ErrItemIsNotConstructed, err)
	})

	t.Run("should surface non-capacity errors", func(t *testing.T) {
		first := mustBox(t, "First", 5)
		second := mustBox(t, "Second", 5)
		item := mustItem(t, "Owned")
		require.NoError(t, first.Add(item))

		_, err := packer.Pack([]*bundle.Item{item}, []*bundle.Container{second})

		require.ErrorIs(t, err, bundle.ErrElementAlreadyAttached)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		box := mustBox(t, "Box", 5)

		result, err := packer.Pack(nil, []*bundle.Container{box})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Packed)
		assert.Empty(t, result.Rejected)
	})
}
