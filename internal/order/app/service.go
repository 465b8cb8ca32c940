package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dwikikusuma/freshcart/internal/order/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("order not found")
	ErrFinalStatus  = errors.New("order already delivered")
)

type Service struct {
	repo OrderRepo
	now  func() time.Time
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: items must not be empty", ErrInvalidInput)
	}
	if req.ShippingAmount.IsNegative() {
		return domain.Order{}, fmt.Errorf("%w: shipping amount cannot be negative, got %s", ErrInvalidInput, req.ShippingAmount)
	}

	orderItems := make([]domain.OrderItem, 0, len(req.Items))
	subTotalAmount := decimal.Zero

	for i, item := range req.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return domain.Order{}, fmt.Errorf("%w: item %d: product id is required", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidInput, i, item.Quantity)
		}
		if item.UnitAmount.IsNegative() {
			return domain.Order{}, fmt.Errorf("%w: item %d: unit amount cannot be negative, got %s", ErrInvalidInput, i, item.UnitAmount)
		}

		lineTotal := item.UnitAmount.Mul(decimal.NewFromInt(int64(item.Quantity)))
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			UnitAmount:      item.UnitAmount,
			Quantity:        item.Quantity,
			LineTotalAmount: lineTotal,
		})

		subTotalAmount = subTotalAmount.Add(lineTotal)
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	now := s.now().UTC()
	order := domain.Order{
		ID:             uuid.NewString(),
		Reference:      newReference(),
		Status:         domain.StatusConfirmed,
		Currency:       currency,
		ShippingAmount: req.ShippingAmount,
		SubTotalAmount: subTotalAmount,
		TotalAmount:    subTotalAmount.Add(req.ShippingAmount),
		OrderItems:     orderItems,
		DeliverySlot:   req.DeliverySlot,
		PaymentMethod:  req.PaymentMethod,
		Address:        req.Address,
		Timeline:       []domain.StatusChange{{Status: domain.StatusConfirmed, At: now}},
		DeliveryFrom:   now.Add(domain.DeliveryEarliest),
		DeliveryTo:     now.Add(domain.DeliveryLatest),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	createdOrder, err := s.repo.CreateOrderTx(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	return createdOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	id, err := parseID(id)
	if err != nil {
		return domain.Order{}, err
	}
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) Track(ctx context.Context, id string) (domain.Order, []domain.TrackingStep, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, nil, err
	}
	return o, o.Tracking(), nil
}

// Advance moves the order one step along its status flow.
func (s *Service) Advance(ctx context.Context, id string) (domain.Order, error) {
	id, err := parseID(id)
	if err != nil {
		return domain.Order{}, err
	}
	return s.repo.UpdateOrderTx(ctx, id, func(o domain.Order) (domain.Order, error) {
		next, ok := o.Advance(s.now().UTC())
		if !ok {
			return o, fmt.Errorf("%w: %s", ErrFinalStatus, o.Reference)
		}
		return next, nil
	})
}

func parseID(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", fmt.Errorf("%w: order id: %v", ErrInvalidInput, err)
	}
	return u.String(), nil
}

// newReference returns the short human readable order number, ORD
// followed by five digits.
func newReference() string {
	return fmt.Sprintf("ORD%05d", 10000+rand.IntN(90000))
}
