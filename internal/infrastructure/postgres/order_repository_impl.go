package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/furnistore/backend/internal/domain/entity"
	"github.com/furnistore/backend/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create writes the order in a single insert. Items and the shipping address go
// in as JSONB snapshots; nothing references live catalog rows afterwards.
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	addr, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, items, shipping_address, total_amount, payment_status, order_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, o.UserID, items, addr, o.TotalAmount, o.PaymentStatus, o.OrderStatus)
	return row.Scan(&o.ID, &o.CreatedAt)
}

const orderColumns = `o.id, o.user_id, u.name, o.items, o.shipping_address, o.total_amount, o.payment_status, o.order_status, o.created_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	o := &entity.Order{}
	var items, addr []byte
	if err := row.Scan(&o.ID, &o.UserID, &o.CustomerName, &items, &addr,
		&o.TotalAmount, &o.PaymentStatus, &o.OrderStatus, &o.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(addr, &o.ShippingAddress); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders o JOIN users u ON u.id = o.user_id
		WHERE o.id = $1
	`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return o, err
}

// ListByUser returns the user's orders newest first; created_at is the only
// ordering key for order history.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	return r.list(ctx, `
		SELECT `+orderColumns+`
		FROM orders o JOIN users u ON u.id = o.user_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
	`, userID)
}

func (r *OrderRepository) ListRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	return r.list(ctx, `
		SELECT `+orderColumns+`
		FROM orders o JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
		LIMIT $1
	`, limit)
}

func (r *OrderRepository) list(ctx context.Context, q string, args ...any) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.pool.Exec(ctx, `UPDATE orders SET order_status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

func (r *OrderRepository) SumTotalAmount(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM orders`).Scan(&sum)
	return sum, err
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
