package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furnistore/backend/internal/domain/entity"
	"github.com/furnistore/backend/internal/domain/repository"
)

type WishlistRepository struct {
	pool *pgxpool.Pool
}

func NewWishlistRepository(pool *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

func (r *WishlistRepository) List(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, added_at
		FROM wishlist_items
		WHERE user_id = $1
		ORDER BY added_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.WishlistItem, 0)
	for rows.Next() {
		var it entity.WishlistItem
		if err := rows.Scan(&it.ProductID, &it.AddedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Add is a no-op when the product is already wishlisted.
func (r *WishlistRepository) Add(ctx context.Context, userID, productID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO wishlist_items (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`, userID, productID)
	return err
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	return err
}

var _ repository.WishlistRepository = (*WishlistRepository)(nil)
