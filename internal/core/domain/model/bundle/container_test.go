package bundle_test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"bundling/internal/core/domain/model/bundle"
	"bundling/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	t.Run("should create valid empty container", func(t *testing.T) {
		c, err := bundle.NewContainer("Peripherals", mustMoney(t, "5.00"), "Box", 5)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Peripherals", c.Name())
		assert.Equal(t, "Box", c.PackagingType())
		assert.Equal(t, 5, c.MaxCapacity())
		assert.Equal(t, 0, c.ElementCount())
		assert.False(t, c.IsFull())
	})

	t.Run("should default packaging type and capacity", func(t *testing.T) {
		c, err := bundle.NewContainer("Shipment", kernel.ZeroMoney(), "", 0)

		require.NoError(t, err)
		assert.Equal(t, bundle.DefaultPackagingType, c.PackagingType())
		assert.Equal(t, bundle.DefaultMaxCapacity, c.MaxCapacity())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := bundle.NewContainer("", kernel.ZeroMoney(), "", 5)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("should fail with negative capacity", func(t *testing.T) {
		c, err := bundle.NewContainer("Shipment", kernel.ZeroMoney(), "", -1)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "maxCapacity is invalid")
	})
}

func TestContainer_Add(t *testing.T) {
	t.Run("should append elements in insertion order", func(t *testing.T) {
		c, _ := bundle.NewContainer("Peripherals", mustMoney(t, "5.00"), "", 5)
		mouse, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		keyboard, _ := bundle.NewItem("Keyboard", mustMoney(t, "89.99"), "")

		require.NoError(t, c.Add(mouse))
		require.NoError(t, c.Add(keyboard))

		contents := c.Contents()
		require.Len(t, contents, 2)
		assert.Same(t, mouse, contents[0])
		assert.Same(t, keyboard, contents[1])
	})

	t.Run("should reject add beyond capacity and leave contents unchanged", func(t *testing.T) {
		c, _ := bundle.NewContainer("Small", kernel.ZeroMoney(), "", 5)
		for i := 0; i < 5; i++ {
			item, _ := bundle.NewItem(fmt.Sprintf("Item-%d", i), mustMoney(t, "1.00"), "")
			require.NoError(t, c.Add(item))
		}
		require.True(t, c.IsFull())

		extra, _ := bundle.NewItem("Extra", mustMoney(t, "1.00"), "")
		err := c.Add(extra)

		require.ErrorIs(t, err, bundle.ErrCapacityExceeded)
		assert.Equal(t, 5, c.ElementCount())

		// The container stays fully usable after a rejected add.
		removed, _ := bundle.NewItem("Item-0", mustMoney(t, "1.00"), "")
		require.NoError(t, c.Remove(removed))
		require.NoError(t, c.Add(extra))
		assert.Equal(t, 5, c.ElementCount())
	})

	t.Run("should reject element already owned by another container", func(t *testing.T) {
		first, _ := bundle.NewContainer("First", kernel.ZeroMoney(), "", 5)
		second, _ := bundle.NewContainer("Second", kernel.ZeroMoney(), "", 5)
		item, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")

		require.NoError(t, first.Add(item))
		err := second.Add(item)

		require.ErrorIs(t, err, bundle.ErrElementAlreadyAttached)
		assert.Equal(t, 0, second.ElementCount())
	})

	t.Run("should reject container containing itself", func(t *testing.T) {
		c, _ := bundle.NewContainer("Shipment", kernel.ZeroMoney(), "", 5)

		err := c.Add(c)

		require.ErrorIs(t, err, bundle.ErrCycleDetected)
		assert.Equal(t, 0, c.ElementCount())
	})

	t.Run("should reject transitive cycle", func(t *testing.T) {
		outer, _ := bundle.NewContainer("Outer", kernel.ZeroMoney(), "", 5)
		inner, _ := bundle.NewContainer("Inner", kernel.ZeroMoney(), "", 5)
		require.NoError(t, outer.Add(inner))

		err := inner.Add(outer)

		require.ErrorIs(t, err, bundle.ErrCycleDetected)
		assert.Equal(t, 0, inner.ElementCount())
	})

	t.Run("should reject nil element", func(t *testing.T) {
		c, _ := bundle.NewContainer("Shipment", kernel.ZeroMoney(), "", 5)

		err := c.Add(nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "element is required")
	})

	t.Run("should reject unconstructed element", func(t *testing.T) {
		c, _ := bundle.NewContainer("Shipment", kernel.ZeroMoney(), "", 5)

		err := c.Add(&bundle.Item{})

		require.Error(t, err)
		assert.Equal(t, bundle.ErrItemIsNotConstructed, err)
	})
}

func TestContainer_Remove(t *testing.T) {
	t.Run("should remove reference-identical element", func(t *testing.T) {
		c, _ := bundle.NewContainer("Peripherals", kernel.ZeroMoney(), "", 5)
		item, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		require.NoError(t, c.Add(item))

		require.NoError(t, c.Remove(item))

		assert.Equal(t, 0, c.ElementCount())
	})

	t.Run("should remove first structurally identical item", func(t *testing.T) {
		c, _ := bundle.NewContainer("Peripherals", kernel.ZeroMoney(), "", 5)
		first, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		second, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		require.NoError(t, c.Add(first))
		require.NoError(t, c.Add(second))

		lookalike, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		require.NoError(t, c.Remove(lookalike))

		contents := c.Contents()
		require.Len(t, contents, 1)
		assert.Same(t, second, contents[0])
	})

	t.Run("should fail when element is absent", func(t *testing.T) {
		c, _ := bundle.NewContainer("Peripherals", kernel.ZeroMoney(), "", 5)
		item, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")

		err := c.Remove(item)

		require.ErrorIs(t, err, bundle.ErrElementNotFound)
	})

	t.Run("removed element can be re-added elsewhere", func(t *testing.T) {
		first, _ := bundle.NewContainer("First", kernel.ZeroMoney(), "", 5)
		second, _ := bundle.NewContainer("Second", kernel.ZeroMoney(), "", 5)
		item, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")

		require.NoError(t, first.Add(item))
		require.NoError(t, first.Remove(item))
		require.NoError(t, second.Add(item))

		assert.Equal(t, 1, second.ElementCount())
	})
}

func TestContainer_Price(t *testing.T) {
	t.Run("empty container price is handling cost", func(t *testing.T) {
		c, _ := bundle.NewContainer("Shipment", mustMoney(t, "10.00"), "", 5)

		assert.Equal(t, "10.00", c.Price().String())
	})

	t.Run("concrete nested scenario", func(t *testing.T) {
		mouse, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		keyboard, _ := bundle.NewItem("Keyboard", mustMoney(t, "89.99"), "")
		peripherals, _ := bundle.NewContainer("Peripherals", mustMoney(t, "5.00"), "", 5)
		require.NoError(t, peripherals.Add(mouse))
		require.NoError(t, peripherals.Add(keyboard))

		assert.Equal(t, "120.98", peripherals.Price().String())

		book, _ := bundle.NewItem("Book", mustMoney(t, "45.00"), "")
		shipment, _ := bundle.NewContainer("Shipment", mustMoney(t, "10.00"), "", 5)
		require.NoError(t, shipment.Add(peripherals))
		require.NoError(t, shipment.Add(book))

		assert.Equal(t, "175.98", shipment.Price().String())
	})

	t.Run("price reflects later mutations", func(t *testing.T) {
		c, _ := bundle.NewContainer("Shipment", mustMoney(t, "10.00"), "", 5)
		require.Equal(t, "10.00", c.Price().String())

		item, _ := bundle.NewItem("Book", mustMoney(t, "45.00"), "")
		require.NoError(t, c.Add(item))
		assert.Equal(t, "55.00", c.Price().String())

		require.NoError(t, c.Remove(item))
		assert.Equal(t, "10.00", c.Price().String())
	})

	t.Run("recursive aggregation holds for random trees", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 7))

		for i := 0; i < 20; i++ {
			root, want := buildRandomTree(t, rng, 0)
			assert.True(t, root.Price().Decimal().Equal(want),
				"tree %d: got %s, want %s", i, root.Price(), want)
		}
	})
}

// buildRandomTree grows a container of random depth (up to 10) and returns it
// together with the independently accumulated expected price.
func buildRandomTree(t *testing.T, rng *rand.Rand, depth int) (*bundle.Container, decimal.Decimal) {
	t.Helper()

	handling := decimal.NewFromInt(int64(rng.IntN(1000))).Div(decimal.NewFromInt(100))
	handlingMoney, err := kernel.NewMoney(handling)
	require.NoError(t, err)

	c, err := bundle.NewContainer(fmt.Sprintf("Box-%d-%d", depth, rng.IntN(1000)), handlingMoney, "", 8)
	require.NoError(t, err)

	want := handling
	for n := rng.IntN(4); n > 0; n-- {
		if depth < 10 && rng.IntN(3) == 0 {
			child, childTotal := buildRandomTree(t, rng, depth+1)
			require.NoError(t, c.Add(child))
			want = want.Add(childTotal)
			continue
		}

		price := decimal.NewFromInt(int64(rng.IntN(10000))).Div(decimal.NewFromInt(100))
		priceMoney, moneyErr := kernel.NewMoney(price)
		require.NoError(t, moneyErr)
		item, itemErr := bundle.NewItem(fmt.Sprintf("Item-%d", rng.IntN(1000)), priceMoney, "")
		require.NoError(t, itemErr)
		require.NoError(t, c.Add(item))
		want = want.Add(price)
	}

	return c, want
}

func TestContainer_AllItems(t *testing.T) {
	t.Run("should flatten nested items depth-first", func(t *testing.T) {
		mouse, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		keyboard, _ := bundle.NewItem("Keyboard", mustMoney(t, "89.99"), "")
		book, _ := bundle.NewItem("Book", mustMoney(t, "45.00"), "")

		inner, _ := bundle.NewContainer("Peripherals", mustMoney(t, "5.00"), "", 5)
		require.NoError(t, inner.Add(mouse))
		require.NoError(t, inner.Add(keyboard))

		outer, _ := bundle.NewContainer("Shipment", mustMoney(t, "10.00"), "", 5)
		require.NoError(t, outer.Add(inner))
		require.NoError(t, outer.Add(book))

		items := outer.AllItems()

		require.Len(t, items, 3)
		assert.Same(t, mouse, items[0])
		assert.Same(t, keyboard, items[1])
		assert.Same(t, book, items[2])
	})

	t.Run("empty container has no items", func(t *testing.T) {
		c, _ := bundle.NewContainer("Shipment", kernel.ZeroMoney(), "", 5)

		assert.Empty(t, c.AllItems())
	})
}

func TestContainer_Describe(t *testing.T) {
	t.Run("empty container renders the empty marker", func(t *testing.T) {
		c, _ := bundle.NewContainer("Shipment", mustMoney(t, "10.00"), "", 5)

		assert.Equal(t, "Shipment [Standard]: handling 10.00 (empty)", c.Describe(0))
	})

	t.Run("should render occupancy and children in insertion order", func(t *testing.T) {
		mouse, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		keyboard, _ := bundle.NewItem("Keyboard", mustMoney(t, "89.99"), "")
		peripherals, _ := bundle.NewContainer("Peripherals", mustMoney(t, "5.00"), "", 5)
		require.NoError(t, peripherals.Add(mouse))
		require.NoError(t, peripherals.Add(keyboard))

		book, _ := bundle.NewItem("Book", mustMoney(t, "45.00"), "")
		shipment, _ := bundle.NewContainer("Shipment", mustMoney(t, "10.00"), "", 5)
		require.NoError(t, shipment.Add(peripherals))
		require.NoError(t, shipment.Add(book))

		want := strings.Join([]string{
			"Shipment [Standard]: handling 10.00, 2/5 elements",
			"  Peripherals [Standard]: handling 5.00, 2/5 elements",
			"    Mouse (General): 25.99",
			"    Keyboard (General): 89.99",
			"  Book (General): 45.00",
		}, "\n")

		assert.Equal(t, want, shipment.Describe(0))
	})

	t.Run("should be idempotent without intervening mutation", func(t *testing.T) {
		c, _ := bundle.NewContainer("Shipment", mustMoney(t, "10.00"), "", 5)
		item, _ := bundle.NewItem("Book", mustMoney(t, "45.00"), "")
		require.NoError(t, c.Add(item))

		assert.Equal(t, c.Describe(0), c.Describe(0))
	})
}

func TestRestoreContainer(t *testing.T) {
	t.Run("should rebuild container with contents", func(t *testing.T) {
		mouse, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		book, _ := bundle.NewItem("Book", mustMoney(t, "45.00"), "")

		c, err := bundle.RestoreContainer("Shipment", mustMoney(t, "10.00"), "Crate", 5,
			[]bundle.Element{mouse, book})

		require.NoError(t, err)
		assert.Equal(t, 2, c.ElementCount())
		assert.Equal(t, "80.99", c.Price().String())
	})

	t.Run("should fail when contents exceed capacity", func(t *testing.T) {
		a, _ := bundle.NewItem("A", mustMoney(t, "1.00"), "")
		b, _ := bundle.NewItem("B", mustMoney(t, "1.00"), "")

		c, err := bundle.RestoreContainer("Tiny", kernel.ZeroMoney(), "", 1, []bundle.Element{a, b})

		require.ErrorIs(t, err, bundle.ErrCapacityExceeded)
		assert.Nil(t, c)
	})
}

func TestFindByName(t *testing.T) {
	t.Run("should find nested element with its parent", func(t *testing.T) {
		mouse, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		inner, _ := bundle.NewContainer("Peripherals", mustMoney(t, "5.00"), "", 5)
		require.NoError(t, inner.Add(mouse))
		outer, _ := bundle.NewContainer("Shipment", mustMoney(t, "10.00"), "", 5)
		require.NoError(t, outer.Add(inner))

		found, parent := bundle.FindByName([]bundle.Element{outer}, "Mouse")

		assert.Same(t, mouse, found)
		assert.Same(t, inner, parent)
	})

	t.Run("top-level match has nil parent", func(t *testing.T) {
		book, _ := bundle.NewItem("Book", mustMoney(t, "45.00"), "")

		found, parent := bundle.FindByName([]bundle.Element{book}, "Book")

		assert.Same(t, book, found)
		assert.Nil(t, parent)
	})

	t.Run("missing name returns nil", func(t *testing.T) {
		found, parent := bundle.FindByName(nil, "Ghost")

		assert.Nil(t, found)
		assert.Nil(t, parent)
	})
}

func TestIsAttached(t *testing.T) {
	t.Run("tracks ownership across add and remove", func(t *testing.T) {
		item, _ := bundle.NewItem("Mouse", mustMoney(t, "25.99"), "")
		box, _ := bundle.NewContainer("Peripherals", mustMoney(t, "5.00"), "", 5)

		assert.False(t, bundle.IsAttached(item))

		require.NoError(t, box.Add(item))
		assert.True(t, bundle.IsAttached(item))

		require.NoError(t, box.Remove(item))
		assert.False(t, bundle.IsAttached(item))
	})

	t.Run("nil element is not attached", func(t *testing.T) {
		assert.False(t, bundle.IsAttached(nil))
	})
}
