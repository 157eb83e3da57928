package entity

import "time"

// WishlistItem is one entry in a user's wishlist set. Uniqueness is enforced on
// insert; reads keep insertion order for stable display.
type WishlistItem struct {
	ProductID string    `json:"productId"`
	Product   *Product  `json:"product,omitempty"` // resolved on read
	AddedAt   time.Time `json:"addedAt"`
}
