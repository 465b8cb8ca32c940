package domain

import "github.com/shopspring/decimal"

type QuoteLine struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines                []QuoteLine
	ItemCount            int
	Subtotal             decimal.Decimal
	DeliveryFee          decimal.Decimal
	Total                decimal.Decimal
	AmountToFreeDelivery decimal.Decimal
}
