package grpc

import (
	"context"
	"net"
	"testing"

	cartv1 "github.com/dwikikusuma/freshcart/api/cart/v1"
	"github.com/dwikikusuma/freshcart/internal/cart/app"
	catalogapp "github.com/dwikikusuma/freshcart/internal/catalog/app"
	"github.com/dwikikusuma/freshcart/internal/catalog/infra/memory"
	profile "github.com/dwikikusuma/freshcart/internal/profile/domain"
	"github.com/dwikikusuma/freshcart/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func dialCart(t *testing.T) (cartv1.CartServiceClient, *state.Store) {
	t.Helper()

	repo, err := memory.NewSeedProductRepo()
	require.NoError(t, err)
	products, err := repo.List(context.Background())
	require.NoError(t, err)

	store := state.New(state.Options{Catalog: products, User: profile.DefaultUser()})
	t.Cleanup(store.Close)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(state.UnaryServerInterceptor(store)))
	cartv1.RegisterCartServiceServer(srv, NewServer(app.NewService(catalogapp.NewService(repo))))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return cartv1.NewCartServiceClient(conn), store
}

func TestCartOverGRPC(t *testing.T) {
	client, store := dialCart(t)
	ctx := context.Background()

	for _, id := range []string{"1", "1", "1", "3"} {
		_, err := client.AddItem(ctx, &cartv1.AddItemRequest{ProductId: id})
		require.NoError(t, err)
	}

	cart, err := client.GetCart(ctx, &cartv1.GetCartRequest{})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, int32(3), cart.Lines[0].Quantity)
	assert.Equal(t, "44.70", cart.Lines[0].LineTotal.Amount)
	assert.Equal(t, int32(4), cart.Totals.ItemCount)
	assert.Equal(t, "54.69", cart.Totals.Subtotal.Amount)
	assert.Equal(t, "0.00", cart.Totals.DeliveryFee.Amount)
	assert.Equal(t, "54.69", cart.Totals.Total.Amount)
	assert.True(t, cart.Totals.FreeDelivery)

	cart, err = client.SetItemQuantity(ctx, &cartv1.SetItemQuantityRequest{ProductId: "1", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "24.89", cart.Totals.Subtotal.Amount)
	assert.Equal(t, "4.99", cart.Totals.DeliveryFee.Amount)
	assert.Equal(t, "29.88", cart.Totals.Total.Amount)
	assert.Equal(t, "25.11", cart.Totals.AmountToFreeDelivery.Amount)
	assert.False(t, cart.Totals.FreeDelivery)

	cart, err = client.RemoveItem(ctx, &cartv1.RemoveItemRequest{ProductId: "3"})
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)

	cart, err = client.ClearCart(ctx, &cartv1.ClearCartRequest{})
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Empty(t, store.Cart())
}

func TestCartErrorCodes(t *testing.T) {
	client, store := dialCart(t)
	ctx := context.Background()

	tests := []struct {
		name string
		id   string
		want codes.Code
	}{
		{"blank id", " ", codes.InvalidArgument},
		{"unknown product", "99", codes.NotFound},
		{"out of stock", "6", codes.FailedPrecondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.AddItem(ctx, &cartv1.AddItemRequest{ProductId: tt.id})
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
	assert.Empty(t, store.Cart())
}
