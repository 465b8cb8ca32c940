package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/freshcart/internal/catalog/app"
	"github.com/dwikikusuma/freshcart/internal/catalog/domain"
)

//go:embed schema.sql
var schema string

// Migrate creates the catalog tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate catalog schema: %w", err)
	}
	return nil
}

const (
	upsertProductSQL = `INSERT INTO products (id, position, title, price, original_price, image, category, description, in_stock, rating, reviews)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, title = EXCLUDED.title, price = EXCLUDED.price,
    original_price = EXCLUDED.original_price, image = EXCLUDED.image, category = EXCLUDED.category,
    description = EXCLUDED.description, in_stock = EXCLUDED.in_stock, rating = EXCLUDED.rating, reviews = EXCLUDED.reviews`

	upsertCategorySQL = `INSERT INTO categories (id, position, title, image) VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, title = EXCLUDED.title, image = EXCLUDED.image`

	productColumns = `id, title, price, original_price, image, category, description, in_stock, rating, reviews`

	selectProductSQL = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	listProductsSQL = `SELECT ` + productColumns + ` FROM products ORDER BY position`

	listCategoriesSQL = `SELECT id, title, image FROM categories ORDER BY position`
)

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Seed upserts products and categories, keeping their slice order as the
// listing order.
func (r *ProductRepo) Seed(ctx context.Context, products []domain.Product, categories []domain.Category) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = func() error {
		for i, c := range categories {
			if _, err := tx.ExecContext(ctx, upsertCategorySQL, c.ID, i, c.Title, c.Image); err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
			}
		}
		for i, p := range products {
			if _, err := tx.ExecContext(ctx, upsertProductSQL,
				p.ID, i, p.Title, p.Price, p.OriginalPrice, p.Image, p.Category,
				p.Description, p.InStock, p.Rating, p.Reviews,
			); err != nil {
				return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
			}
		}
		return nil
	}()
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, selectProductSQL, strings.TrimSpace(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, listProductsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, listCategoriesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Image); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (domain.Product, error) {
	var p domain.Product
	err := s.Scan(&p.ID, &p.Title, &p.Price, &p.OriginalPrice, &p.Image, &p.Category,
		&p.Description, &p.InStock, &p.Rating, &p.Reviews)
	return p, err
}
