package adapter

import (
	"context"

	cartdomain "github.com/dwikikusuma/freshcart/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/freshcart/internal/checkout/app"
	profile "github.com/dwikikusuma/freshcart/internal/profile/domain"
	"github.com/dwikikusuma/freshcart/internal/state"
)

// StoreSession reads the session cart from the store provided to ctx.
type StoreSession struct{}

func NewStoreSession() StoreSession {
	return StoreSession{}
}

func (StoreSession) GetCart(ctx context.Context) ([]checkoutapp.CartItem, error) {
	lines := state.Use(ctx).Cart()

	items := make([]checkoutapp.CartItem, 0, len(lines))
	for _, ln := range lines {
		items = append(items, checkoutapp.CartItem{
			ProductID: ln.ID,
			Quantity:  int64(ln.Quantity),
		})
	}
	return items, nil
}

func (StoreSession) Pricing(ctx context.Context) cartdomain.Pricing {
	return state.Use(ctx).Pricing()
}

// CompleteOrder subtracts the ordered quantities in one store update, so
// anything added to the cart while the order was being placed survives.
func (StoreSession) CompleteOrder(ctx context.Context, ordered []checkoutapp.CartItem) error {
	state.Use(ctx).Update("complete_order", func(tx *state.Tx) {
		lines := tx.Cart()
		for _, it := range ordered {
			if ln, ok := cartdomain.Find(lines, it.ProductID); ok {
				tx.UpdateQuantity(it.ProductID, ln.Quantity-int(it.Quantity))
			}
		}
		orders := tx.User().Orders + 1
		tx.UpdateUser(profile.UserPatch{Orders: &orders})
	})
	return nil
}
