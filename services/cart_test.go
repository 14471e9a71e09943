package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HectorSandate/Hilosaki/apperrors"
)

func TestAddItemConcurrentIncrements(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Amigurumi", "10.00", false)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 1))
		}()
	}
	wg.Wait()

	items, err := f.cart.ListItems(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, n, items[0].Item.Quantity)
}

func TestAddItemValidation(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Bufanda", "15.00", false)

	err := f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 0)
	var v *apperrors.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "quantity")

	err = f.cart.AddItem(context.Background(), customerCtx.UserID, "missing-product", 1)
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "product_id")
}

func TestAddItemRejectsDisabledProduct(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Gorro", "12.00", false)
	require.NoError(t, f.catalog.SetVisibility(context.Background(), adminCtx, p.ID, "disabled"))

	err := f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 1)
	var v *apperrors.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "product_id")
}

func TestSetQuantityBelowOneRemoves(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Chal", "25.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 3))

	items, err := f.cart.ListItems(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, f.cart.SetQuantity(context.Background(), customerCtx.UserID, items[0].Item.ID, 0))

	items, err = f.cart.ListItems(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSetQuantityExact(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Chal", "25.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 3))

	items, err := f.cart.ListItems(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	require.NoError(t, f.cart.SetQuantity(context.Background(), customerCtx.UserID, items[0].Item.ID, 7))

	items, err = f.cart.ListItems(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	assert.Equal(t, 7, items[0].Item.Quantity)
}

func TestListItemsFlagsVanishedProduct(t *testing.T) {
	f := newFixture(t)
	kept := f.seedProduct(t, "Manta", "30.00", false)
	doomed := f.seedProduct(t, "Descontinuado", "5.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, kept.ID, 1))
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, doomed.ID, 2))

	require.NoError(t, f.catalog.HardDelete(context.Background(), adminCtx, doomed.ID))

	items, err := f.cart.ListItems(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byProduct := map[string]ResolvedCartItem{}
	for _, item := range items {
		byProduct[item.Item.ProductID] = item
	}
	assert.True(t, byProduct[kept.ID].Available)
	assert.False(t, byProduct[doomed.ID].Available)

	// the vanished line contributes nothing to the display total
	total, err := f.cart.Total(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	assert.Equal(t, "30", total.String())
}

func TestEmptyCartReadsAreNoOps(t *testing.T) {
	f := newFixture(t)

	items, err := f.cart.ListItems(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, items)

	total, err := f.cart.Total(context.Background(), "nobody")
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	require.NoError(t, f.cart.Clear(context.Background(), "nobody"))
}

func TestCountSumsQuantities(t *testing.T) {
	f := newFixture(t)
	a := f.seedProduct(t, "A", "1.00", false)
	b := f.seedProduct(t, "B", "2.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, a.ID, 2))
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, b.ID, 3))

	n, err := f.cart.Count(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
