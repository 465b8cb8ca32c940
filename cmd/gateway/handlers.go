package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	cartv1 "github.com/dwikikusuma/freshcart/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/freshcart/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/freshcart/api/checkout/v1"
	orderv1 "github.com/dwikikusuma/freshcart/api/order/v1"
	profilev1 "github.com/dwikikusuma/freshcart/api/profile/v1"
	sessionv1 "github.com/dwikikusuma/freshcart/api/session/v1"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	upstreamTimeout = 5 * time.Second
	maxBodyBytes    = 1 << 20
)

type gateway struct {
	catalog  catalogv1.CatalogServiceClient
	cart     cartv1.CartServiceClient
	profile  profilev1.ProfileServiceClient
	session  sessionv1.SessionServiceClient
	checkout checkoutv1.CheckoutServiceClient
	orders   orderv1.OrderServiceClient
	// health is optional; readyz always succeeds without it.
	health healthpb.HealthClient
	log    *slog.Logger
}

func newGateway(cc grpc.ClientConnInterface, log *slog.Logger) *gateway {
	return &gateway{
		catalog:  catalogv1.NewCatalogServiceClient(cc),
		cart:     cartv1.NewCartServiceClient(cc),
		profile:  profilev1.NewProfileServiceClient(cc),
		session:  sessionv1.NewSessionServiceClient(cc),
		checkout: checkoutv1.NewCheckoutServiceClient(cc),
		orders:   orderv1.NewOrderServiceClient(cc),
		health:   healthpb.NewHealthClient(cc),
		log:      log,
	}
}

func (g *gateway) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", g.readyz)

	mux.HandleFunc("GET /v1/products", g.listProducts)
	mux.HandleFunc("GET /v1/products/{id}", g.getProduct)
	mux.HandleFunc("GET /v1/categories", g.listCategories)

	mux.HandleFunc("GET /v1/cart", g.getCart)
	mux.HandleFunc("POST /v1/cart/items", g.addCartItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", g.setCartItemQuantity)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", g.removeCartItem)
	mux.HandleFunc("DELETE /v1/cart", g.clearCart)

	mux.HandleFunc("GET /v1/profile", g.getProfile)
	mux.HandleFunc("PATCH /v1/profile", g.updateProfile)
	mux.HandleFunc("PUT /v1/profile/language", g.setLanguage)
	mux.HandleFunc("GET /v1/i18n/{key}", g.translate)

	mux.HandleFunc("GET /v1/session/status", g.getStatus)
	mux.HandleFunc("PUT /v1/session/loading", g.setLoading)
	mux.HandleFunc("PUT /v1/session/error", g.setError)
	mux.HandleFunc("DELETE /v1/session/error", g.clearError)

	mux.HandleFunc("GET /v1/checkout/options", g.checkoutOptions)
	mux.HandleFunc("GET /v1/checkout/quote", g.quote)
	mux.HandleFunc("POST /v1/checkout/orders", g.placeOrder)

	mux.HandleFunc("GET /v1/orders/{id}", g.getOrder)
	mux.HandleFunc("GET /v1/orders/{id}/tracking", g.trackOrder)
	mux.HandleFunc("POST /v1/orders/{id}/advance", g.advanceOrder)

	return accessLog(g.log, mux)
}

// forward runs one upstream call with a bounded deadline and writes its
// result or its mapped error.
func forward[Resp any](g *gateway, w http.ResponseWriter, r *http.Request, okStatus int, call func(context.Context) (*Resp, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), upstreamTimeout)
	defer cancel()

	resp, err := call(ctx)
	if err != nil {
		writeGRPCError(w, g.log, err)
		return
	}
	writeJSON(w, okStatus, resp)
}

// decodeBody reads a JSON request body into dst. An empty body leaves dst
// untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (g *gateway) readyz(w http.ResponseWriter, r *http.Request) {
	if g.health == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second)
	defer cancel()

	resp, err := g.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "storefront not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Catalog

func (g *gateway) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &catalogv1.ListProductsRequest{
		Category: q.Get("category"),
		Search:   q.Get("q"),
		Sort:     q.Get("sort"),
		Cursor:   q.Get("cursor"),
	}
	if v := q.Get("in_stock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "in_stock must be a boolean")
			return
		}
		req.InStockOnly = b
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "limit must be a non-negative integer")
			return
		}
		req.Limit = int32(n)
	}

	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*catalogv1.ListProductsResponse, error) {
		return g.catalog.ListProducts(ctx, req)
	})
}

func (g *gateway) getProduct(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*catalogv1.GetProductResponse, error) {
		return g.catalog.GetProduct(ctx, &catalogv1.GetProductRequest{Id: r.PathValue("id")})
	})
}

func (g *gateway) listCategories(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*catalogv1.ListCategoriesResponse, error) {
		return g.catalog.ListCategories(ctx, &catalogv1.ListCategoriesRequest{})
	})
}

// Cart

func (g *gateway) getCart(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*cartv1.Cart, error) {
		return g.cart.GetCart(ctx, &cartv1.GetCartRequest{})
	})
}

func (g *gateway) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartv1.AddItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*cartv1.Cart, error) {
		return g.cart.AddItem(ctx, &req)
	})
}

func (g *gateway) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity *int32 `json:"quantity"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Quantity == nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "quantity is required")
		return
	}
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*cartv1.Cart, error) {
		return g.cart.SetItemQuantity(ctx, &cartv1.SetItemQuantityRequest{ProductId: r.PathValue("id"), Quantity: *body.Quantity})
	})
}

func (g *gateway) removeCartItem(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*cartv1.Cart, error) {
		return g.cart.RemoveItem(ctx, &cartv1.RemoveItemRequest{ProductId: r.PathValue("id")})
	})
}

func (g *gateway) clearCart(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*cartv1.Cart, error) {
		return g.cart.ClearCart(ctx, &cartv1.ClearCartRequest{})
	})
}

// Profile

func (g *gateway) getProfile(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*profilev1.User, error) {
		return g.profile.GetUser(ctx, &profilev1.GetUserRequest{})
	})
}

func (g *gateway) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profilev1.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*profilev1.User, error) {
		return g.profile.UpdateUser(ctx, &req)
	})
}

func (g *gateway) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req profilev1.SetLanguageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*profilev1.User, error) {
		return g.profile.SetLanguage(ctx, &req)
	})
}

func (g *gateway) translate(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*profilev1.TranslateResponse, error) {
		return g.profile.Translate(ctx, &profilev1.TranslateRequest{Key: r.PathValue("key"), Language: r.URL.Query().Get("lang")})
	})
}

// Session

func (g *gateway) getStatus(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*sessionv1.Status, error) {
		return g.session.GetStatus(ctx, &sessionv1.GetStatusRequest{})
	})
}

func (g *gateway) setLoading(w http.ResponseWriter, r *http.Request) {
	var req sessionv1.SetLoadingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*sessionv1.Status, error) {
		return g.session.SetLoading(ctx, &req)
	})
}

func (g *gateway) setError(w http.ResponseWriter, r *http.Request) {
	var req sessionv1.SetErrorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*sessionv1.Status, error) {
		return g.session.SetError(ctx, &req)
	})
}

func (g *gateway) clearError(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*sessionv1.Status, error) {
		return g.session.ClearError(ctx, &sessionv1.ClearErrorRequest{})
	})
}

// Checkout

func (g *gateway) checkoutOptions(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*checkoutv1.GetOptionsResponse, error) {
		return g.checkout.GetOptions(ctx, &checkoutv1.GetOptionsRequest{})
	})
}

func (g *gateway) quote(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*checkoutv1.QuoteResponse, error) {
		return g.checkout.Quote(ctx, &checkoutv1.QuoteRequest{})
	})
}

func (g *gateway) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req checkoutv1.PlaceOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	forward(g, w, r, http.StatusCreated, func(ctx context.Context) (*checkoutv1.PlaceOrderResponse, error) {
		return g.checkout.PlaceOrder(ctx, &req)
	})
}

// Orders

func (g *gateway) getOrder(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*orderv1.Order, error) {
		return g.orders.GetOrder(ctx, &orderv1.GetOrderRequest{Id: r.PathValue("id")})
	})
}

func (g *gateway) trackOrder(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*orderv1.Tracking, error) {
		return g.orders.TrackOrder(ctx, &orderv1.TrackOrderRequest{Id: r.PathValue("id")})
	})
}

func (g *gateway) advanceOrder(w http.ResponseWriter, r *http.Request) {
	forward(g, w, r, http.StatusOK, func(ctx context.Context) (*orderv1.Order, error) {
		return g.orders.AdvanceOrder(ctx, &orderv1.AdvanceOrderRequest{Id: r.PathValue("id")})
	})
}
