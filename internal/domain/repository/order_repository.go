package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/furnistore/backend/internal/domain/entity"
)

// OrderRepository persists orders. Rows are written once; only the order status
// column may change afterwards.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Count(ctx context.Context) (int64, error)
	SumTotalAmount(ctx context.Context) (decimal.Decimal, error)
}
