package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cartv1 "github.com/dwikikusuma/freshcart/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/freshcart/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/freshcart/api/checkout/v1"
	orderv1 "github.com/dwikikusuma/freshcart/api/order/v1"
	profilev1 "github.com/dwikikusuma/freshcart/api/profile/v1"
	sessionv1 "github.com/dwikikusuma/freshcart/api/session/v1"
	cartapp "github.com/dwikikusuma/freshcart/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/freshcart/internal/cart/grpc"
	catalogapp "github.com/dwikikusuma/freshcart/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/freshcart/internal/catalog/grpc"
	cmemory "github.com/dwikikusuma/freshcart/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/freshcart/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/freshcart/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/freshcart/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/freshcart/internal/i18n"
	orderapp "github.com/dwikikusuma/freshcart/internal/order/app"
	ordergrpc "github.com/dwikikusuma/freshcart/internal/order/grpc"
	ordermemory "github.com/dwikikusuma/freshcart/internal/order/infra/memory"
	profileapp "github.com/dwikikusuma/freshcart/internal/profile/app"
	profiledomain "github.com/dwikikusuma/freshcart/internal/profile/domain"
	profilegrpc "github.com/dwikikusuma/freshcart/internal/profile/grpc"
	"github.com/dwikikusuma/freshcart/internal/state"
	sessiongrpc "github.com/dwikikusuma/freshcart/internal/state/grpc"
	"github.com/dwikikusuma/freshcart/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

// newTestGateway serves the full storefront over bufconn and returns an
// HTTP server for the gateway in front of it.
func newTestGateway(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	catalogRepo, err := cmemory.NewSeedProductRepo()
	require.NoError(t, err)
	catalogSvc := catalogapp.NewService(catalogRepo)
	products, err := catalogSvc.Products(ctx)
	require.NoError(t, err)

	tr, err := i18n.New("en")
	require.NoError(t, err)

	store := state.New(state.Options{Catalog: products, User: profiledomain.DefaultUser(), Translator: tr})
	t.Cleanup(store.Close)

	orderSvc := orderapp.NewService(ordermemory.NewOrderRepo())
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewStoreSession(),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		orderSvc,
		4,
	)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(state.UnaryServerInterceptor(store)))
	catalogv1.RegisterCatalogServiceServer(srv, cgrpc.NewServer(catalogSvc))
	cartv1.RegisterCartServiceServer(srv, cartgrpc.NewServer(cartapp.NewService(catalogSvc)))
	profilev1.RegisterProfileServiceServer(srv, profilegrpc.NewServer(profileapp.NewService(tr)))
	sessionv1.RegisterSessionServiceServer(srv, sessiongrpc.NewServer())
	orderv1.RegisterOrderServiceServer(srv, ordergrpc.NewServer(orderSvc))
	checkoutv1.RegisterCheckoutServiceServer(srv, checkoutgrpc.NewServer(checkoutSvc))
	healthpb.RegisterHealthServer(srv, health.NewServer())
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

	ts := httptest.NewServer(newGateway(conn, logger.Discard()).routes())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, body string, out any) int {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestGatewayShoppingFlow(t *testing.T) {
	ts := newTestGateway(t)

	var products catalogv1.ListProductsResponse
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/products?in_stock=true&sort=price_desc&limit=2", "", &products))
	require.Len(t, products.Products, 2)
	assert.Equal(t, "14.90", products.Products[0].Price.Amount)
	assert.NotEmpty(t, products.NextCursor)

	var cart cartv1.Cart
	for _, id := range []string{"1", "3"} {
		require.Equal(t, http.StatusOK, do(t, ts, http.MethodPost, "/v1/cart/items", `{"product_id":"`+id+`"}`, &cart))
	}
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPut, "/v1/cart/items/1", `{"quantity":3}`, &cart))
	assert.Equal(t, int32(4), cart.Totals.ItemCount)
	assert.Equal(t, "54.69", cart.Totals.Subtotal.Amount)
	assert.Equal(t, "0.00", cart.Totals.DeliveryFee.Amount)
	assert.Equal(t, "54.69", cart.Totals.Total.Amount)

	var quote checkoutv1.QuoteResponse
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/checkout/quote", "", &quote))
	assert.Equal(t, "54.69", quote.Total.Amount)

	var placed checkoutv1.PlaceOrderResponse
	require.Equal(t, http.StatusCreated, do(t, ts, http.MethodPost, "/v1/checkout/orders",
		`{"slot_id":"morning","payment_method_id":"cod","address_id":"home"}`, &placed))
	assert.Equal(t, "CONFIRMED", placed.Order.Status)
	assert.Equal(t, "Cash on Delivery", placed.Order.PaymentMethod)

	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/cart", "", &cart))
	assert.Empty(t, cart.Lines)

	var user profilev1.User
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/profile", "", &user))
	assert.Equal(t, int32(6), user.Orders)

	var order orderv1.Order
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPost, "/v1/orders/"+placed.Order.Id+"/advance", "", &order))
	assert.Equal(t, "PROCESSING", order.Status)

	var tracking orderv1.Tracking
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/orders/"+placed.Order.Id+"/tracking", "", &tracking))
	assert.Len(t, tracking.Steps, 4)
}

func TestGatewayProfileAndSession(t *testing.T) {
	ts := newTestGateway(t)

	var user profilev1.User
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPatch, "/v1/profile", `{"name":"Asha"}`, &user))
	assert.Equal(t, "Asha", user.Name)
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPut, "/v1/profile/language", `{"language":"hi"}`, &user))
	assert.Equal(t, "hi", user.Language)

	var text profilev1.TranslateResponse
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/i18n/cart?lang=en", "", &text))
	assert.Equal(t, "Cart", text.Text)

	var st sessionv1.Status
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPut, "/v1/session/loading", `{"loading":true}`, &st))
	assert.True(t, st.Loading)
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPut, "/v1/session/error", `{"message":"offline"}`, &st))
	assert.Equal(t, sessionv1.Status{Error: "offline"}, st)
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodDelete, "/v1/session/error", "", &st))
	assert.Equal(t, sessionv1.Status{}, st)
}

func TestGatewayErrors(t *testing.T) {
	ts := newTestGateway(t)

	tests := []struct {
		name, method, path, body string
		wantStatus               int
		wantCode                 string
	}{
		{"unknown product", http.MethodGet, "/v1/products/404", "", http.StatusNotFound, "NOT_FOUND"},
		{"bad sort", http.MethodGet, "/v1/products?sort=up", "", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"bad limit", http.MethodGet, "/v1/products?limit=x", "", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"out of stock", http.MethodPost, "/v1/cart/items", `{"product_id":"6"}`, http.StatusConflict, "FAILED_PRECONDITION"},
		{"unknown field", http.MethodPost, "/v1/cart/items", `{"sku":"1"}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"empty cart quote", http.MethodGet, "/v1/checkout/quote", "", http.StatusConflict, "FAILED_PRECONDITION"},
		{"bad language", http.MethodPut, "/v1/profile/language", `{"language":"??"}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"bad order id", http.MethodGet, "/v1/orders/abc", "", http.StatusBadRequest, "INVALID_ARGUMENT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorBody
			got := do(t, ts, tt.method, tt.path, tt.body, &body)
			assert.Equal(t, tt.wantStatus, got)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestGatewaySetQuantityRejectsBadBodies(t *testing.T) {
	ts := newTestGateway(t)
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPost, "/v1/cart/items", `{"product_id":"1"}`, nil))

	tests := []struct {
		name, body string
	}{
		{"empty body", ""},
		{"missing quantity", `{}`},
		{"above line maximum", `{"quantity":2147483647}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorBody
			assert.Equal(t, http.StatusBadRequest, do(t, ts, http.MethodPut, "/v1/cart/items/1", tt.body, &body))
			assert.Equal(t, "INVALID_ARGUMENT", body.Error.Code)

			var cart cartv1.Cart
			require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/cart", "", &cart))
			require.Len(t, cart.Lines, 1, "rejected update must keep the line")
			assert.Equal(t, int32(1), cart.Totals.ItemCount)
		})
	}
}

func TestGatewayHealthEndpoints(t *testing.T) {
	ts := newTestGateway(t)
	assert.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/healthz", "", nil))
	assert.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/readyz", "", nil))
}
