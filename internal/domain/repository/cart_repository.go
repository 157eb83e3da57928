package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/furnistore/backend/internal/domain/entity"
)

// CartRepository persists per-user carts. Get creates the cart record on first
// access so reads never fail for users without one.
type CartRepository interface {
	Get(ctx context.Context, userID string) (*entity.Cart, error)
	// UpsertItem atomically inserts a line or adds qty to an existing one,
	// avoiding the lost update of a read-then-write under concurrent adds.
	UpsertItem(ctx context.Context, userID, productID string, qty int, price decimal.Decimal) error
	// SetItemQuantity replaces a line's quantity. Returns false when no such
	// line exists.
	SetItemQuantity(ctx context.Context, userID, productID string, qty int) (bool, error)
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}
