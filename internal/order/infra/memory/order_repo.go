package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/dwikikusuma/freshcart/internal/order/app"
	"github.com/dwikikusuma/freshcart/internal/order/domain"
	"github.com/google/uuid"
)

// OrderRepo keeps placed orders for the life of the process.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: make(map[string]domain.Order)}
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	items := make([]domain.OrderItem, len(order.OrderItems))
	for i, it := range order.OrderItems {
		it.OrderID = order.ID
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		items[i] = it
	}
	order.OrderItems = items
	order.Timeline = slices.Clone(order.Timeline)

	r.orders[order.ID] = order
	return order, nil
}

func (r *OrderRepo) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, app.ErrNotFound
	}
	return o, nil
}

func (r *OrderRepo) UpdateOrderTx(ctx context.Context, id string, fn func(domain.Order) (domain.Order, error)) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, app.ErrNotFound
	}
	updated, err := fn(o)
	if err != nil {
		return domain.Order{}, err
	}
	r.orders[id] = updated
	return updated, nil
}
