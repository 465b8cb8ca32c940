package adapter

import (
	"context"
	"testing"

	catalogapp "github.com/dwikikusuma/freshcart/internal/catalog/app"
	"github.com/dwikikusuma/freshcart/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/freshcart/internal/checkout/app"
	profile "github.com/dwikikusuma/freshcart/internal/profile/domain"
	"github.com/dwikikusuma/freshcart/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogServiceReader(t *testing.T) {
	repo, err := memory.NewSeedProductRepo()
	require.NoError(t, err)
	r := NewCatalogServiceReader(catalogapp.NewService(repo))

	p, err := r.GetProduct(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Berry Blast Mix", p.Name)
	assert.True(t, p.InStock)

	_, err = r.GetProduct(context.Background(), "404")
	assert.ErrorIs(t, err, checkoutapp.ErrOutOfStock)
}

func TestStoreSession(t *testing.T) {
	repo, err := memory.NewSeedProductRepo()
	require.NoError(t, err)
	products, _ := repo.List(context.Background())

	store := state.New(state.Options{Catalog: products, User: profile.DefaultUser()})
	defer store.Close()
	ctx := state.Provide(context.Background(), store)

	store.AddToCart(products[0])
	store.AddToCart(products[0])
	store.AddToCart(products[2])

	s := NewStoreSession()
	items, err := s.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, []checkoutapp.CartItem{{ProductID: "1", Quantity: 2}, {ProductID: "3", Quantity: 1}}, items)
	assert.True(t, s.Pricing(ctx).DeliveryFee.Equal(store.Pricing().DeliveryFee))

	require.NoError(t, s.CompleteOrder(ctx, items))
	assert.Empty(t, store.Cart())
	assert.Equal(t, 6, store.User().Orders)
}

func TestStoreSessionCompleteOrderKeepsLaterAdds(t *testing.T) {
	repo, err := memory.NewSeedProductRepo()
	require.NoError(t, err)
	products, _ := repo.List(context.Background())

	store := state.New(state.Options{Catalog: products, User: profile.DefaultUser()})
	defer store.Close()
	ctx := state.Provide(context.Background(), store)

	store.AddToCart(products[0])
	s := NewStoreSession()
	ordered, err := s.GetCart(ctx)
	require.NoError(t, err)

	// Lands between the quote and completion.
	store.AddToCart(products[0])
	store.AddToCart(products[2])

	require.NoError(t, s.CompleteOrder(ctx, ordered))
	lines := store.Cart()
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "3", lines[1].ID)
	assert.Equal(t, 6, store.User().Orders)
}
