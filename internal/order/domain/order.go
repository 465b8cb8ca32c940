package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusConfirmed      Status = "CONFIRMED"
	StatusProcessing     Status = "PROCESSING"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
)

// statusFlow is the only order in which an order moves.
var statusFlow = []Status{StatusConfirmed, StatusProcessing, StatusOutForDelivery, StatusDelivered}

var statusLabels = map[Status]string{
	StatusConfirmed:      "Order Confirmed",
	StatusProcessing:     "Order Processing",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
}

func (s Status) Valid() bool { return slices.Contains(statusFlow, s) }

func (s Status) Label() string { return statusLabels[s] }

// Next returns the status that follows s. ok is false for the final status.
func (s Status) Next() (next Status, ok bool) {
	i := slices.Index(statusFlow, s)
	if i < 0 || i == len(statusFlow)-1 {
		return s, false
	}
	return statusFlow[i+1], true
}

// DefaultCurrency applies when an order request names none.
const DefaultCurrency = "USD"

// Delivery window relative to order creation.
const (
	DeliveryEarliest = 2 * time.Hour
	DeliveryLatest   = 4 * time.Hour
)

type Order struct {
	ID             string
	Reference      string
	Status         Status
	Currency       string
	SubTotalAmount decimal.Decimal
	ShippingAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	OrderItems     []OrderItem
	DeliverySlot   string
	PaymentMethod  string
	Address        string
	Timeline       []StatusChange
	DeliveryFrom   time.Time
	DeliveryTo     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderItem struct {
	ID              string
	OrderID         string
	ProductID       string
	Name            string
	UnitAmount      decimal.Decimal
	Quantity        int32
	LineTotalAmount decimal.Decimal
}

type StatusChange struct {
	Status Status
	At     time.Time
}

type CreateOrderRequest struct {
	Currency       string
	ShippingAmount decimal.Decimal
	Items          []OrderItemRequest
	DeliverySlot   string
	PaymentMethod  string
	Address        string
}

type OrderItemRequest struct {
	ProductID  string
	Name       string
	UnitAmount decimal.Decimal
	Quantity   int32
}

type TrackingStep struct {
	Status Status
	Label  string
	Done   bool
	// At is zero for steps not reached yet.
	At time.Time
}

// Advance moves o to the next status at now. ok is false once delivered.
func (o Order) Advance(now time.Time) (Order, bool) {
	next, ok := o.Status.Next()
	if !ok {
		return o, false
	}
	o.Status = next
	o.UpdatedAt = now
	o.Timeline = append(slices.Clone(o.Timeline), StatusChange{Status: next, At: now})
	return o, true
}

// Tracking lists every step of the flow, marking the ones already reached.
func (o Order) Tracking() []TrackingStep {
	reached := slices.Index(statusFlow, o.Status)

	steps := make([]TrackingStep, len(statusFlow))
	for i, st := range statusFlow {
		steps[i] = TrackingStep{Status: st, Label: st.Label(), Done: i <= reached}
		for _, ch := range o.Timeline {
			if ch.Status == st {
				steps[i].At = ch.At
			}
		}
	}
	return steps
}
