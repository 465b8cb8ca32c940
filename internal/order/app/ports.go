package app

import (
	"context"

	"github.com/dwikikusuma/freshcart/internal/order/domain"
)

type OrderRepo interface {
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	// UpdateOrderTx loads the order, applies fn and stores the result
	// atomically. An error from fn aborts the update.
	UpdateOrderTx(ctx context.Context, id string, fn func(domain.Order) (domain.Order, error)) (domain.Order, error)
}
