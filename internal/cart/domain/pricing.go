package domain

import "github.com/shopspring/decimal"

// Pricing holds the delivery fee rule: orders whose subtotal is strictly
// above FreeDeliveryThreshold ship free, everything else pays DeliveryFee.
type Pricing struct {
	FreeDeliveryThreshold decimal.Decimal
	DeliveryFee           decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{
		FreeDeliveryThreshold: decimal.NewFromInt(50),
		DeliveryFee:           decimal.RequireFromString("4.99"),
	}
}

func (p Pricing) FeeFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(p.FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return p.DeliveryFee
}

// Totals are derived from the cart on every read and never stored.
type Totals struct {
	ItemCount   int
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	FinalTotal  decimal.Decimal
	// AmountToFreeDelivery is what the customer still has to add to stop
	// paying the fee; zero once delivery is free.
	AmountToFreeDelivery decimal.Decimal
}

func (p Pricing) Totals(lines []Line) Totals {
	return p.TotalsFor(Subtotal(lines), Count(lines))
}

func (p Pricing) TotalsFor(subtotal decimal.Decimal, itemCount int) Totals {
	fee := p.FeeFor(subtotal)

	toFree := decimal.Zero
	if fee.IsPositive() {
		toFree = decimal.Max(decimal.Zero, p.FreeDeliveryThreshold.Sub(subtotal))
	}

	return Totals{
		ItemCount:            itemCount,
		Subtotal:             subtotal,
		DeliveryFee:          fee,
		FinalTotal:           subtotal.Add(fee),
		AmountToFreeDelivery: toFree,
	}
}
