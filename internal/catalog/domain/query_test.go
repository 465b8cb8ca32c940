package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func product(id, category, price, original string, inStock bool, rating float64) Product {
	return Product{
		ID:            id,
		Title:         "Mix " + id,
		Category:      category,
		Price:         decimal.RequireFromString(price),
		OriginalPrice: decimal.RequireFromString(original),
		InStock:       inStock,
		Rating:        rating,
	}
}

func ids(ps []Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		price, original string
		want            int64
	}{
		{"14.90", "19.90", 25},
		{"12.50", "15.00", 17},
		{"10", "10", 0},
		{"10", "0", 0},
		{"12", "10", 0},
	}
	for _, tt := range tests {
		p := product("x", "c", tt.price, tt.original, true, 0)
		if got := p.DiscountPercent(); got != tt.want {
			t.Errorf("DiscountPercent(%s, %s) = %d, want %d", tt.price, tt.original, got, tt.want)
		}
	}
}

func TestListQueryApply(t *testing.T) {
	catalog := []Product{
		product("1", "Smoothie Packs", "14.90", "19.90", true, 4.5),
		product("2", "Fresh Cut Fruits", "12.50", "15.00", true, 4.3),
		product("3", "Smoothie Packs", "9.99", "12.99", true, 4.7),
		product("6", "Soup Ingredients", "7.99", "9.99", false, 4.1),
	}

	tests := []struct {
		name  string
		query ListQuery
		want  []string
	}{
		{"no filter keeps catalog order", ListQuery{}, []string{"1", "2", "3", "6"}},
		{"category is case-insensitive", ListQuery{Category: "SMOOTHIE PACKS"}, []string{"1", "3"}},
		{"in stock only", ListQuery{InStockOnly: true}, []string{"1", "2", "3"}},
		{"search title", ListQuery{Search: "mix 2"}, []string{"2"}},
		{"price ascending", ListQuery{Sort: SortPriceAsc}, []string{"6", "3", "2", "1"}},
		{"price descending", ListQuery{Sort: SortPriceDesc}, []string{"1", "2", "3", "6"}},
		{"rating", ListQuery{Sort: SortRating}, []string{"3", "1", "2", "6"}},
		{"discount", ListQuery{Sort: SortDiscount}, []string{"1", "3", "6", "2"}},
		{"filters combine with sort", ListQuery{InStockOnly: true, Category: "smoothie packs", Sort: SortPriceAsc}, []string{"3", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.query.Apply(catalog))
			if !equal(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}

	if catalog[0].ID != "1" || catalog[3].ID != "6" {
		t.Fatal("Apply must not reorder its input")
	}
}
