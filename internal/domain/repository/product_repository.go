package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/furnistore/backend/internal/domain/entity"
)

// ProductFilter narrows a catalog listing. Zero values mean "no constraint";
// price bounds are inclusive and Search matches name case-insensitively.
type ProductFilter struct {
	Category string
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRepository defines catalog persistence. Find returns one page plus the
// total matching count so callers can derive page counts.
type ProductRepository interface {
	Find(ctx context.Context, f ProductFilter, page, limit int) ([]entity.Product, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
