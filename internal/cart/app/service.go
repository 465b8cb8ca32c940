package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/freshcart/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/freshcart/internal/catalog/app"
	"github.com/dwikikusuma/freshcart/internal/state"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
	ErrOutOfStock   = errors.New("product out of stock")
)

// Service drives the session cart held by the store in ctx.
type Service struct {
	products ProductLookup
}

func NewService(products ProductLookup) *Service {
	return &Service{
		products: products,
	}
}

func (s *Service) GetCart(ctx context.Context) domain.Cart {
	return view(state.Use(ctx))
}

// AddItem adds one unit of productID. Unknown and out of stock products are
// rejected before the store is touched.
func (s *Service) AddItem(ctx context.Context, productID string) (domain.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domain.Cart{}, ErrInvalidInput
	}

	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) {
			return domain.Cart{}, fmt.Errorf("%w: %s", ErrNotFound, productID)
		}
		return domain.Cart{}, fmt.Errorf("lookup product %s: %w", productID, err)
	}
	if !p.InStock {
		return domain.Cart{}, fmt.Errorf("%w: %s", ErrOutOfStock, productID)
	}

	store := state.Use(ctx)
	if l, ok := domain.Find(store.Cart(), productID); ok && l.Quantity >= domain.MaxLineQuantity {
		return domain.Cart{}, fmt.Errorf("%w: %s already at the maximum quantity %d", ErrInvalidInput, productID, domain.MaxLineQuantity)
	}
	store.AddToCart(p)
	return view(store), nil
}

// SetItemQuantity sets the quantity of a line already in the cart. Zero or
// negative quantities remove it; ids not in the cart are ignored. Quantities
// above domain.MaxLineQuantity are rejected.
func (s *Service) SetItemQuantity(ctx context.Context, productID string, quantity int) (domain.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	if quantity > domain.MaxLineQuantity {
		return domain.Cart{}, fmt.Errorf("%w: quantity %d exceeds %d", ErrInvalidInput, quantity, domain.MaxLineQuantity)
	}
	store := state.Use(ctx)
	store.UpdateQuantity(productID, quantity)
	return view(store), nil
}

func (s *Service) RemoveItem(ctx context.Context, productID string) (domain.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	store := state.Use(ctx)
	store.RemoveFromCart(productID)
	return view(store), nil
}

func (s *Service) ClearCart(ctx context.Context) domain.Cart {
	store := state.Use(ctx)
	store.ClearCart()
	return view(store)
}

func view(store *state.Store) domain.Cart {
	snap := store.Snapshot()
	return domain.Cart{Lines: snap.Cart, Totals: snap.Totals}
}
