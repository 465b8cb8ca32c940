package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/freshcart/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, strings.TrimSpace(id))
}

// ListProducts filters, sorts and pages the catalog. The returned cursor is
// the id of the last product of the page, empty on the last page.
func (s *Service) ListProducts(ctx context.Context, q domain.ListQuery) ([]domain.Product, string, error) {
	if !q.Sort.Valid() {
		return nil, "", ErrInvalidInput
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, "", err
	}
	matched := q.Apply(all)

	start := 0
	if cursor := strings.TrimSpace(q.Cursor); cursor != "" {
		start = -1
		for i, p := range matched {
			if p.ID == cursor {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, "", ErrInvalidInput
		}
	}

	end := min(start+limit, len(matched))
	page := matched[start:end]

	var next string
	if end < len(matched) && len(page) > 0 {
		next = page[len(page)-1].ID
	}
	return page, next, nil
}

// Products returns the whole catalog in seed order.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.Categories(ctx)
}
