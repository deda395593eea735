package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsarbalaji/storefront-client/internal/domain"
	autherror "github.com/pulsarbalaji/storefront-client/internal/errors"
	"github.com/pulsarbalaji/storefront-client/internal/store"
)

func newMemoryCart(t *testing.T) *store.CartStore {
	t.Helper()

	s, err := store.NewCartStore("")
	require.NoError(t, err)

	return s
}

func TestCartStore_AddIncrementsQuantity(t *testing.T) {
	s := newMemoryCart(t)
	p := domain.Product{ID: 1, Name: "mug", Price: 120, OfferPrice: 100, Stock: 3}

	require.NoError(t, s.Add(p))
	require.NoError(t, s.Add(p))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "mug", items[0].Name)
	assert.Equal(t, 100.0, items[0].OfferPrice)
}

func TestCartStore_AddCappedAtStock(t *testing.T) {
	s := newMemoryCart(t)
	p := domain.Product{ID: 1, Stock: 2}

	require.NoError(t, s.Add(p))
	require.NoError(t, s.Add(p))

	err := s.Add(p)
	assert.Equal(t, autherror.ErrOutOfStock, err)
	assert.Equal(t, 2, s.Items()[0].Quantity)
}

func TestCartStore_AddOutOfStockProduct(t *testing.T) {
	s := newMemoryCart(t)

	err := s.Add(domain.Product{ID: 7, Stock: 0})
	assert.Equal(t, autherror.ErrOutOfStock, err)
	assert.Empty(t, s.Items())
}

func TestCartStore_RemoveDecrementsAndDeletesAtZero(t *testing.T) {
	s := newMemoryCart(t)
	p := domain.Product{ID: 1, Stock: 5}

	require.NoError(t, s.Add(p))
	require.NoError(t, s.Add(p))

	require.NoError(t, s.Remove(1))
	assert.Equal(t, 1, s.Items()[0].Quantity)

	require.NoError(t, s.Remove(1))
	assert.Empty(t, s.Items())
}

func TestCartStore_RemoveUnknownProduct(t *testing.T) {
	s := newMemoryCart(t)

	err := s.Remove(42)
	assert.Equal(t, autherror.ErrProductNotInCart, err)
}

func TestCartStore_SetAllReplacesWholesale(t *testing.T) {
	s := newMemoryCart(t)
	require.NoError(t, s.Add(domain.Product{ID: 1, Stock: 5}))
	require.NoError(t, s.Add(domain.Product{ID: 2, Stock: 5}))

	reserved := []domain.CartLine{{ProductID: 3, Quantity: 2, Name: "shoes", Price: 900}}
	require.NoError(t, s.SetAll(reserved))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartStore_Clear(t *testing.T) {
	s := newMemoryCart(t)
	require.NoError(t, s.Add(domain.Product{ID: 1, Stock: 5}))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Items())
}

func TestCartStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := store.NewCartStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Add(domain.Product{ID: 1, Name: "mug", Stock: 3}))
	require.NoError(t, s.Add(domain.Product{ID: 1, Name: "mug", Stock: 3}))

	reopened, err := store.NewCartStore(dir)
	require.NoError(t, err)

	items := reopened.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "mug", items[0].Name)
}

func TestCartStore_ItemsReturnsCopy(t *testing.T) {
	s := newMemoryCart(t)
	require.NoError(t, s.Add(domain.Product{ID: 1, Stock: 5}))

	items := s.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, s.Items()[0].Quantity)
}
