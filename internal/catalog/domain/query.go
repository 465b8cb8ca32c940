package domain

import (
	"cmp"
	"slices"
	"strings"
)

type SortOrder string

const (
	SortRelevance SortOrder = "relevance"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
	SortDiscount  SortOrder = "discount"
)

func (s SortOrder) Valid() bool {
	switch s {
	case "", SortRelevance, SortPriceAsc, SortPriceDesc, SortRating, SortDiscount:
		return true
	}
	return false
}

// ListQuery is the single filter and sort policy applied to every product
// listing.
type ListQuery struct {
	Category    string
	Search      string
	InStockOnly bool
	Sort        SortOrder
	Limit       int
	Cursor      string
}

func (q ListQuery) Matches(p Product) bool {
	if q.InStockOnly && !p.InStock {
		return false
	}
	if c := strings.TrimSpace(q.Category); c != "" && !strings.EqualFold(c, p.Category) {
		return false
	}
	if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" {
		if !strings.Contains(strings.ToLower(p.Title), s) &&
			!strings.Contains(strings.ToLower(p.Description), s) {
			return false
		}
	}
	return true
}

// Apply filters and sorts products without touching the input slice.
// Sorting is stable so ties keep catalog order.
func (q ListQuery) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q.Matches(p) {
			out = append(out, p)
		}
	}

	switch q.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return a.Price.Cmp(b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return b.Price.Cmp(a.Price) })
	case SortRating:
		slices.SortStableFunc(out, func(a, b Product) int {
			if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
				return c
			}
			return cmp.Compare(b.Reviews, a.Reviews)
		})
	case SortDiscount:
		slices.SortStableFunc(out, func(a, b Product) int {
			return cmp.Compare(b.DiscountPercent(), a.DiscountPercent())
		})
	}
	return out
}
