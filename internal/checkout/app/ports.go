package app

import (
	"context"

	cartdomain "github.com/dwikikusuma/freshcart/internal/cart/domain"
	orderdomain "github.com/dwikikusuma/freshcart/internal/order/domain"
	"github.com/shopspring/decimal"
)

// Session is the shopper's running session: the cart being checked out and
// the pricing rule that applies to it.
type Session interface {
	GetCart(ctx context.Context) ([]CartItem, error)
	Pricing(ctx context.Context) cartdomain.Pricing
	// CompleteOrder takes the ordered quantities out of the cart and counts
	// the order on the profile. Lines added after the quote stay.
	CompleteOrder(ctx context.Context, ordered []CartItem) error
}

type CartItem struct {
	ProductID string
	Quantity  int64
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID      string
	Name    string
	Price   decimal.Decimal
	InStock bool
}

type OrderWriter interface {
	CreateOrder(ctx context.Context, req orderdomain.CreateOrderRequest) (orderdomain.Order, error)
}
