package memory

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"github.com/dwikikusuma/freshcart/internal/catalog/app"
	"github.com/dwikikusuma/freshcart/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var seedYAML []byte

type seedFile struct {
	Products   []seedProduct  `yaml:"products"`
	Categories []seedCategory `yaml:"categories"`
}

type seedProduct struct {
	ID            string  `yaml:"id"`
	Title         string  `yaml:"title"`
	Price         string  `yaml:"price"`
	OriginalPrice string  `yaml:"original_price"`
	Image         string  `yaml:"image"`
	Category      string  `yaml:"category"`
	Description   string  `yaml:"description"`
	InStock       bool    `yaml:"in_stock"`
	Rating        float64 `yaml:"rating"`
	Reviews       int     `yaml:"reviews"`
}

type seedCategory struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Image string `yaml:"image"`
}

// ProductRepo serves the static catalog from memory. It is read-only after
// construction and safe for concurrent use.
type ProductRepo struct {
	products   []domain.Product
	byID       map[string]int
	categories []domain.Category
}

// NewSeedProductRepo loads the catalog bundled with the binary.
func NewSeedProductRepo() (*ProductRepo, error) {
	return NewProductRepoFromYAML(seedYAML)
}

func NewProductRepoFromYAML(data []byte) (*ProductRepo, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}

	r := &ProductRepo{byID: make(map[string]int, len(seed.Products))}
	for i, sp := range seed.Products {
		if sp.ID == "" {
			return nil, fmt.Errorf("product %d: missing id", i)
		}
		if _, dup := r.byID[sp.ID]; dup {
			return nil, fmt.Errorf("product %s: duplicate id", sp.ID)
		}

		price, err := decimal.NewFromString(sp.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s: price: %w", sp.ID, err)
		}
		original := price
		if sp.OriginalPrice != "" {
			if original, err = decimal.NewFromString(sp.OriginalPrice); err != nil {
				return nil, fmt.Errorf("product %s: original price: %w", sp.ID, err)
			}
		}

		r.byID[sp.ID] = len(r.products)
		r.products = append(r.products, domain.Product{
			ID:            sp.ID,
			Title:         sp.Title,
			Price:         price,
			OriginalPrice: original,
			Image:         sp.Image,
			Category:      sp.Category,
			Description:   sp.Description,
			InStock:       sp.InStock,
			Rating:        sp.Rating,
			Reviews:       sp.Reviews,
		})
	}

	for _, sc := range seed.Categories {
		r.categories = append(r.categories, domain.Category(sc))
	}
	return r, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[i], nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return slices.Clone(r.products), nil
}

func (r *ProductRepo) Categories(ctx context.Context) ([]domain.Category, error) {
	return slices.Clone(r.categories), nil
}
