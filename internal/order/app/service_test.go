package app_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/dwikikusuma/freshcart/internal/order/app"
	"github.com/dwikikusuma/freshcart/internal/order/domain"
	"github.com/dwikikusuma/freshcart/internal/order/infra/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validRequest() domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		ShippingAmount: d("4.99"),
		Items: []domain.OrderItemRequest{
			{ProductID: "1", Name: "Berry Blast Mix", UnitAmount: d("14.90"), Quantity: 2},
			{ProductID: "3", Name: "Green Smoothie Pack", UnitAmount: d("9.99"), Quantity: 1},
		},
		DeliverySlot:  "Morning",
		PaymentMethod: "UPI",
		Address:       "123 Main Street, City, State 12345",
	}
}

func TestCreateOrder(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())

	before := time.Now().UTC()
	o, err := svc.CreateOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Regexp(t, regexp.MustCompile(`^ORD\d{5}$`), o.Reference)
	assert.Equal(t, domain.StatusConfirmed, o.Status)
	assert.Equal(t, "USD", o.Currency)
	assert.True(t, o.SubTotalAmount.Equal(d("39.79")), "subtotal %s", o.SubTotalAmount)
	assert.True(t, o.TotalAmount.Equal(d("44.78")), "total %s", o.TotalAmount)
	assert.True(t, o.OrderItems[0].LineTotalAmount.Equal(d("29.80")))
	assert.Equal(t, o.ID, o.OrderItems[0].OrderID)
	require.Len(t, o.Timeline, 1)

	assert.False(t, o.CreatedAt.Before(before))
	assert.Equal(t, 2*time.Hour, o.DeliveryFrom.Sub(o.CreatedAt))
	assert.Equal(t, 4*time.Hour, o.DeliveryTo.Sub(o.CreatedAt))

	got, err := svc.GetOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Reference, got.Reference)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())

	tests := map[string]func(*domain.CreateOrderRequest){
		"no items":          func(r *domain.CreateOrderRequest) { r.Items = nil },
		"negative shipping": func(r *domain.CreateOrderRequest) { r.ShippingAmount = d("-1") },
		"zero quantity":     func(r *domain.CreateOrderRequest) { r.Items[0].Quantity = 0 },
		"negative price":    func(r *domain.CreateOrderRequest) { r.Items[1].UnitAmount = d("-0.01") },
		"missing product":   func(r *domain.CreateOrderRequest) { r.Items[0].ProductID = " " },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := svc.CreateOrder(context.Background(), req)
			assert.ErrorIs(t, err, app.ErrInvalidInput)
		})
	}
}

func TestGetOrderErrors(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())

	_, err := svc.GetOrder(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, app.ErrInvalidInput)

	_, err = svc.GetOrder(context.Background(), "7b0b7f3e-5f0c-4a55-9a55-0d6c3c8b8f11")
	assert.ErrorIs(t, err, app.ErrNotFound)

	_, err = svc.Advance(context.Background(), "7b0b7f3e-5f0c-4a55-9a55-0d6c3c8b8f11")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestAdvanceThroughFlow(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(memory.NewOrderRepo())
	o, err := svc.CreateOrder(ctx, validRequest())
	require.NoError(t, err)

	want := []domain.Status{domain.StatusProcessing, domain.StatusOutForDelivery, domain.StatusDelivered}
	for _, st := range want {
		o, err = svc.Advance(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, st, o.Status)
	}

	_, err = svc.Advance(ctx, o.ID)
	assert.ErrorIs(t, err, app.ErrFinalStatus)

	_, steps, err := svc.Track(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, steps, 4)
	for _, s := range steps {
		assert.True(t, s.Done, "step %s", s.Status)
		assert.False(t, s.At.IsZero(), "step %s", s.Status)
	}
}

func TestConcurrentAdvanceStopsAtDelivered(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(memory.NewOrderRepo())
	o, err := svc.CreateOrder(ctx, validRequest())
	require.NoError(t, err)

	var g errgroup.Group
	for range 10 {
		g.Go(func() error {
			_, _ = svc.Advance(ctx, o.ID)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	got, err := svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, got.Status)
	assert.Len(t, got.Timeline, 4)
}
