package app

import (
	"context"

	catalog "github.com/dwikikusuma/freshcart/internal/catalog/domain"
)

// ProductLookup resolves product ids against the catalog.
type ProductLookup interface {
	GetProduct(ctx context.Context, id string) (catalog.Product, error)
}
