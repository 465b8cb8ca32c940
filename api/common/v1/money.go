// Package commonv1 holds message types shared by the storefront APIs.
package commonv1

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Currency used by every amount the storefront reports.
const Currency = "USD"

// Money is a decimal amount in a currency. Amount is a plain decimal string
// such as "54.69" so no precision is lost on the wire.
type Money struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// NewMoney renders d with two decimal places.
func NewMoney(d decimal.Decimal) *Money {
	return &Money{Currency: Currency, Amount: d.StringFixed(2)}
}

var errNoAmount = errors.New("money: amount is required")

// Decimal parses the amount. A nil Money is an error.
func (m *Money) Decimal() (decimal.Decimal, error) {
	if m == nil || m.Amount == "" {
		return decimal.Decimal{}, errNoAmount
	}
	return decimal.NewFromString(m.Amount)
}
