package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line in a user's cart. Price is captured when the line is
// first added and is display-only; checkout re-resolves the live catalog price.
type CartItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Product   *Product        `json:"product,omitempty"` // resolved on read
}

// Subtotal is line price times quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is owned 1:1 by a user and created lazily on first access.
// At most one line exists per product; adds merge by summing quantities.
type Cart struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"totalPrice"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ComputeTotal recomputes the cart total from its lines. Never cached across
// mutations; callers set Total from this on every read.
func (c *Cart) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
