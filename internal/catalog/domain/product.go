package domain

import (
	"github.com/shopspring/decimal"
)

// Product is immutable reference data loaded once from the catalog seed.
type Product struct {
	ID            string
	Title         string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	Image         string
	Category      string
	Description   string
	InStock       bool
	Rating        float64
	Reviews       int
}

type Category struct {
	ID    string
	Title string
	Image string
}

// DiscountPercent is the whole-percent reduction from OriginalPrice to
// Price, or 0 when there is none.
func (p Product) DiscountPercent() int64 {
	if !p.OriginalPrice.IsPositive() || p.OriginalPrice.LessThanOrEqual(p.Price) {
		return 0
	}
	return p.OriginalPrice.Sub(p.Price).
		Div(p.OriginalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
