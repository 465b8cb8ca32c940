package app

import (
	"context"
	"errors"
	"testing"

	catalogapp "github.com/dwikikusuma/freshcart/internal/catalog/app"
	"github.com/dwikikusuma/freshcart/internal/cart/domain"
	catalog "github.com/dwikikusuma/freshcart/internal/catalog/domain"
	"github.com/dwikikusuma/freshcart/internal/state"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup map[string]catalog.Product

func (f fakeLookup) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	if id == "boom" {
		return catalog.Product{}, errors.New("catalog down")
	}
	p, ok := f[id]
	if !ok {
		return catalog.Product{}, catalogapp.ErrNotFound
	}
	return p, nil
}

func setup(t *testing.T) (*Service, context.Context) {
	t.Helper()
	products := fakeLookup{
		"1": {ID: "1", Price: decimal.RequireFromString("14.90"), InStock: true},
		"3": {ID: "3", Price: decimal.RequireFromString("9.99"), InStock: true},
		"6": {ID: "6", Price: decimal.RequireFromString("7.99"), InStock: false},
	}
	store := state.New(state.Options{})
	t.Cleanup(store.Close)
	return NewService(products), state.Provide(context.Background(), store)
}

func TestAddItem(t *testing.T) {
	svc, ctx := setup(t)

	c, err := svc.AddItem(ctx, " 1 ")
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Totals.ItemCount)

	c, err = svc.AddItem(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestAddItemErrors(t *testing.T) {
	svc, ctx := setup(t)

	tests := []struct {
		name string
		id   string
		want error
	}{
		{"blank id", "  ", ErrInvalidInput},
		{"unknown product", "42", ErrNotFound},
		{"out of stock", "6", ErrOutOfStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, tt.id)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := svc.AddItem(ctx, "boom")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.Empty(t, svc.GetCart(ctx).Lines, "rejected adds must leave the cart alone")
}

func TestSetItemQuantityRemoveAndClear(t *testing.T) {
	svc, ctx := setup(t)
	_, err := svc.AddItem(ctx, "1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "3")
	require.NoError(t, err)

	c, err := svc.SetItemQuantity(ctx, "1", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Totals.ItemCount)
	assert.True(t, c.Totals.Subtotal.Equal(decimal.RequireFromString("54.69")))
	assert.True(t, c.Totals.DeliveryFee.IsZero())

	c, err = svc.SetItemQuantity(ctx, "1", 0)
	require.NoError(t, err)
	assert.Len(t, c.Lines, 1)

	c, err = svc.RemoveItem(ctx, "3")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)

	_, err = svc.RemoveItem(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.SetItemQuantity(ctx, "", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _ = svc.AddItem(ctx, "1")
	c = svc.ClearCart(ctx)
	assert.Empty(t, c.Lines)
	assert.True(t, c.Totals.Subtotal.IsZero())
}

func TestLineQuantityCap(t *testing.T) {
	svc, ctx := setup(t)
	_, err := svc.AddItem(ctx, "1")
	require.NoError(t, err)

	_, err = svc.SetItemQuantity(ctx, "1", 2147483647)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, svc.GetCart(ctx).Totals.ItemCount, "rejected quantity must leave the line alone")

	c, err := svc.SetItemQuantity(ctx, "1", domain.MaxLineQuantity)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxLineQuantity, c.Totals.ItemCount)

	_, err = svc.AddItem(ctx, "1")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, domain.MaxLineQuantity, svc.GetCart(ctx).Lines[0].Quantity)
}

func TestServiceOutsideScopePanics(t *testing.T) {
	svc, _ := setup(t)
	assert.PanicsWithValue(t, state.ErrNoProvider, func() {
		svc.GetCart(context.Background())
	})
}
