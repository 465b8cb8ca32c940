package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/dwikikusuma/freshcart/internal/order/app"
	"github.com/dwikikusuma/freshcart/internal/order/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:embed schema.sql
var schema string

// Migrate creates the order tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate order schema: %w", err)
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{
		db: db,
	}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(q querier) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

const (
	insertOrderSQL = `INSERT INTO orders (id, reference, status, currency, subtotal_amount, shipping_amount, total_amount,
    delivery_slot, payment_method, address, delivery_from, delivery_to, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	insertItemSQL = `INSERT INTO order_items (id, order_id, product_id, name, unit_amount, quantity, line_total_amount, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	insertStatusChangeSQL = `INSERT INTO order_status_changes (order_id, status, changed_at) VALUES ($1, $2, $3)`

	selectOrderSQL = `SELECT id, reference, status, currency, subtotal_amount, shipping_amount, total_amount,
    delivery_slot, payment_method, address, delivery_from, delivery_to, created_at, updated_at
FROM orders WHERE id = $1`

	selectItemsSQL = `SELECT id, order_id, product_id, name, unit_amount, quantity, line_total_amount
FROM order_items WHERE order_id = $1 ORDER BY position`

	selectStatusChangesSQL = `SELECT status, changed_at FROM order_status_changes WHERE order_id = $1 ORDER BY changed_at`

	updateStatusSQL = `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`
)

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	err := r.execTX(ctx, func(q querier) error {
		_, err := q.ExecContext(ctx, insertOrderSQL,
			order.ID, order.Reference, string(order.Status), order.Currency,
			order.SubTotalAmount, order.ShippingAmount, order.TotalAmount,
			order.DeliverySlot, order.PaymentMethod, order.Address,
			order.DeliveryFrom, order.DeliveryTo, order.CreatedAt, order.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		orderItems := make([]domain.OrderItem, 0, len(order.OrderItems))
		for i, item := range order.OrderItems {
			expected := item.UnitAmount.Mul(decimal.NewFromInt(int64(item.Quantity)))
			if !item.LineTotalAmount.Equal(expected) {
				return fmt.Errorf("item %d: line total mismatch", i)
			}

			item.ID = uuid.NewString()
			item.OrderID = order.ID
			if _, err := q.ExecContext(ctx, insertItemSQL,
				item.ID, item.OrderID, item.ProductID, item.Name,
				item.UnitAmount, item.Quantity, item.LineTotalAmount, i,
			); err != nil {
				return fmt.Errorf("failed to insert item %d: %w", i, err)
			}
			orderItems = append(orderItems, item)
		}
		order.OrderItems = orderItems

		for _, ch := range order.Timeline {
			if _, err := q.ExecContext(ctx, insertStatusChangeSQL, order.ID, string(ch.Status), ch.At); err != nil {
				return fmt.Errorf("failed to record status %s: %w", ch.Status, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r *OrderRepo) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return loadOrder(ctx, r.db, id, false)
}

func (r *OrderRepo) UpdateOrderTx(ctx context.Context, id string, fn func(domain.Order) (domain.Order, error)) (domain.Order, error) {
	var updated domain.Order

	err := r.execTX(ctx, func(q querier) error {
		current, err := loadOrder(ctx, q, id, true)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}

		if _, err := q.ExecContext(ctx, updateStatusSQL, id, string(next.Status), next.UpdatedAt); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		for _, ch := range next.Timeline[min(len(current.Timeline), len(next.Timeline)):] {
			if _, err := q.ExecContext(ctx, insertStatusChangeSQL, id, string(ch.Status), ch.At); err != nil {
				return fmt.Errorf("failed to record status %s: %w", ch.Status, err)
			}
		}
		updated = next
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return updated, nil
}

func loadOrder(ctx context.Context, q querier, id string, forUpdate bool) (domain.Order, error) {
	query := selectOrderSQL
	if forUpdate {
		query += " FOR UPDATE"
	}

	var (
		o      domain.Order
		status string
	)
	err := q.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.Reference, &status, &o.Currency,
		&o.SubTotalAmount, &o.ShippingAmount, &o.TotalAmount,
		&o.DeliverySlot, &o.PaymentMethod, &o.Address,
		&o.DeliveryFrom, &o.DeliveryTo, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	o.Status = domain.Status(status)

	if o.OrderItems, err = loadItems(ctx, q, id); err != nil {
		return domain.Order{}, err
	}
	if o.Timeline, err = loadTimeline(ctx, q, id); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func loadItems(ctx context.Context, q querier, orderID string) ([]domain.OrderItem, error) {
	rows, err := q.QueryContext(ctx, selectItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.UnitAmount, &it.Quantity, &it.LineTotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func loadTimeline(ctx context.Context, q querier, orderID string) ([]domain.StatusChange, error) {
	rows, err := q.QueryContext(ctx, selectStatusChangesSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status changes: %w", err)
	}
	defer rows.Close()

	var out []domain.StatusChange
	for rows.Next() {
		var (
			ch     domain.StatusChange
			status string
		)
		if err := rows.Scan(&status, &ch.At); err != nil {
			return nil, fmt.Errorf("failed to scan status change: %w", err)
		}
		ch.Status = domain.Status(status)
		out = append(out, ch)
	}
	return out, rows.Err()
}
