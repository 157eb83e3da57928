package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment and order statuses. Payment stops at pending in this system; a gateway
// callback would move it forward.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"

	OrderPending   = "pending"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is an allowed order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a frozen snapshot of a product at order-creation time.
// Later catalog edits must never reach rows already written.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// Order is immutable once created, except OrderStatus which admins may advance.
// TotalAmount is computed at creation and never recomputed.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	CustomerName    string          `json:"customerName,omitempty"` // resolved for admin views
	Items           []OrderItem     `json:"items"`
	ShippingAddress Address         `json:"shippingAddress"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaymentStatus   string          `json:"paymentStatus"`
	OrderStatus     string          `json:"orderStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
}
