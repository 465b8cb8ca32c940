package domain

import (
	"slices"

	catalog "github.com/dwikikusuma/freshcart/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity bounds a single line. Add and SetQuantity clamp to it.
const MaxLineQuantity = 999

// Line is one product in the cart. Quantity is always at least 1; a line
// whose quantity would reach 0 is removed.
type Line struct {
	catalog.Product
	Quantity int
}

func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// The functions below never modify their input slice, so a caller holding
// an older []Line keeps a consistent view.

// Add increments the line for p, or appends a new line with quantity 1.
func Add(lines []Line, p catalog.Product) []Line {
	out := slices.Clone(lines)
	if i := index(out, p.ID); i >= 0 {
		out[i].Quantity = min(out[i].Quantity+1, MaxLineQuantity)
		return out
	}
	return append(out, Line{Product: p, Quantity: 1})
}

// Remove drops the line for productID; absent ids are a no-op.
func Remove(lines []Line, productID string) []Line {
	return slices.DeleteFunc(slices.Clone(lines), func(l Line) bool {
		return l.ID == productID
	})
}

// SetQuantity clamps quantity to [0, MaxLineQuantity] and removes the line
// at 0. Absent ids are a no-op.
func SetQuantity(lines []Line, productID string, quantity int) []Line {
	i := index(lines, productID)
	if i < 0 {
		return slices.Clone(lines)
	}
	if quantity <= 0 {
		return Remove(lines, productID)
	}
	out := slices.Clone(lines)
	out[i].Quantity = min(quantity, MaxLineQuantity)
	return out
}

func Find(lines []Line, productID string) (Line, bool) {
	if i := index(lines, productID); i >= 0 {
		return lines[i], true
	}
	return Line{}, false
}

func Count(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func index(lines []Line, productID string) int {
	return slices.IndexFunc(lines, func(l Line) bool { return l.ID == productID })
}

// Cart is a read view of the session cart with its derived totals.
type Cart struct {
	Lines  []Line
	Totals Totals
}
