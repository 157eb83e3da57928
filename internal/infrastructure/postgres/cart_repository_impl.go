package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/furnistore/backend/internal/domain/entity"
	"github.com/furnistore/backend/internal/domain/repository"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// ensure creates the user's cart row on first touch and returns its id.
func (r *CartRepository) ensure(ctx context.Context, userID string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO carts (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, userID).Scan(&id)
	return id, err
}

func (r *CartRepository) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	c := &entity.Cart{UserID: userID}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO carts (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = carts.updated_at
		RETURNING id, created_at, updated_at
	`, userID).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT product_id, quantity, price
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY added_at
	`, c.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		c.Items = append(c.Items, it)
	}
	return c, rows.Err()
}

// UpsertItem merges by summing quantities when the line already exists. A single
// statement so two concurrent adds for the same product cannot lose an update.
func (r *CartRepository) UpsertItem(ctx context.Context, userID, productID string, qty int, price decimal.Decimal) error {
	cartID, err := r.ensure(ctx, userID)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`, cartID, productID, qty, price)
	return err
}

func (r *CartRepository) SetItemQuantity(ctx context.Context, userID, productID string, qty int) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE cart_items SET quantity = $1
		WHERE product_id = $2
		  AND cart_id = (SELECT id FROM carts WHERE user_id = $3)
	`, qty, productID, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// RemoveItem is idempotent; deleting an absent line is not an error.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items
		WHERE product_id = $1
		  AND cart_id = (SELECT id FROM carts WHERE user_id = $2)
	`, productID, userID)
	return err
}

// Clear empties the cart but keeps the cart row.
func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = (SELECT id FROM carts WHERE user_id = $1)
	`, userID)
	return err
}

var _ repository.CartRepository = (*CartRepository)(nil)
