package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categories is the fixed set of product categories.
var Categories = []string{"sofa", "bed", "dining", "chair", "table", "shelves"}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ProductImage references an uploaded image. StorageID is the object path in the
// bucket so the image can be replaced or deleted later.
type ProductImage struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

// Product is owned by the catalog and mutated only through admin operations.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Discount    int             `json:"discount"` // percent, [0,100)
	Stock       int             `json:"stock"`
	Images      []ProductImage  `json:"images"`
	Ratings     decimal.Decimal `json:"ratings"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
