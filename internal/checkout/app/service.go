package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/freshcart/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/freshcart/internal/order/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrOutOfStock   = errors.New("product unavailable")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	Session Session
	Catalog CatalogReader
	Orders  OrderWriter

	options       domain.Options
	maxConcurrent int
}

func NewService(session Session, catalog CatalogReader, orders OrderWriter, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Session:       session,
		Catalog:       catalog,
		Orders:        orders,
		options:       domain.DefaultOptions(),
		maxConcurrent: maxConcurrent,
	}
}

func (s *Service) Options() domain.Options {
	return s.options
}

// Quote prices the session cart against the current catalog. Lines are
// looked up concurrently; any unavailable product fails the whole quote.
func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items, err := s.Session.GetCart(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("%w: quantity must be greater than zero: %d", ErrInvalidInput, it.Quantity)
			}

			product, err := s.Catalog.GetProduct(gctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}
			if !product.InStock {
				return fmt.Errorf("%w: %s is out of stock", ErrOutOfStock, product.Name)
			}

			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price.Mul(decimal.NewFromInt(it.Quantity)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	subtotal := decimal.Zero
	count := 0
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
		count += int(line.Quantity)
	}
	totals := s.Session.Pricing(ctx).TotalsFor(subtotal, count)

	return domain.Quote{
		Lines:                lines,
		ItemCount:            totals.ItemCount,
		Subtotal:             totals.Subtotal,
		DeliveryFee:          totals.DeliveryFee,
		Total:                totals.FinalTotal,
		AmountToFreeDelivery: totals.AmountToFreeDelivery,
	}, nil
}

type PlaceOrderRequest struct {
	SlotID          string
	PaymentMethodID string
	AddressID       string
}

// PlaceOrder quotes the cart, records the order and then completes the
// session. The cart is left untouched when the order cannot be created.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (orderdomain.Order, error) {
	slot, ok := s.options.Slot(strings.TrimSpace(req.SlotID))
	if !ok {
		return orderdomain.Order{}, fmt.Errorf("%w: unknown delivery slot %q", ErrInvalidInput, req.SlotID)
	}
	payment, ok := s.options.PaymentMethod(strings.TrimSpace(req.PaymentMethodID))
	if !ok {
		return orderdomain.Order{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethodID)
	}
	address, ok := s.options.Address(strings.TrimSpace(req.AddressID))
	if !ok {
		return orderdomain.Order{}, fmt.Errorf("%w: unknown address %q", ErrInvalidInput, req.AddressID)
	}

	quote, err := s.Quote(ctx)
	if err != nil {
		return orderdomain.Order{}, err
	}

	items := make([]orderdomain.OrderItemRequest, 0, len(quote.Lines))
	ordered := make([]CartItem, 0, len(quote.Lines))
	for _, ln := range quote.Lines {
		ordered = append(ordered, CartItem{ProductID: ln.ProductID, Quantity: ln.Quantity})
		items = append(items, orderdomain.OrderItemRequest{
			ProductID:  ln.ProductID,
			Name:       ln.Name,
			UnitAmount: ln.UnitPrice,
			Quantity:   int32(ln.Quantity),
		})
	}

	order, err := s.Orders.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		Currency:       orderdomain.DefaultCurrency,
		ShippingAmount: quote.DeliveryFee,
		Items:          items,
		DeliverySlot:   fmt.Sprintf("%s (%s)", slot.Label, slot.Window),
		PaymentMethod:  payment.Label,
		Address:        fmt.Sprintf("%s: %s", address.Label, address.Line),
	})
	if err != nil {
		return orderdomain.Order{}, fmt.Errorf("create order: %w", err)
	}

	if err := s.Session.CompleteOrder(ctx, ordered); err != nil {
		return orderdomain.Order{}, fmt.Errorf("complete session: %w", err)
	}
	return order, nil
}
