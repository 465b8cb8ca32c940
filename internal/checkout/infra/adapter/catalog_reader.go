package adapter

import (
	"context"
	"errors"
	"fmt"

	catalogapp "github.com/dwikikusuma/freshcart/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/freshcart/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (checkoutapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) {
		return checkoutapp.Product{}, fmt.Errorf("%w: %s is no longer in the catalog", checkoutapp.ErrOutOfStock, productID)
	}
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		ID:      p.ID,
		Name:    p.Title,
		Price:   p.Price,
		InStock: p.InStock,
	}, nil
}
