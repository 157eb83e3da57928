package repository

import (
	"context"

	"github.com/furnistore/backend/internal/domain/entity"
)

// WishlistRepository persists the per-user wishlist set. Add and Remove are
// idempotent; List keeps insertion order.
type WishlistRepository interface {
	List(ctx context.Context, userID string) ([]entity.WishlistItem, error)
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
}
