package repository

import (
	"context"

	"github.com/furnistore/backend/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	MarkVerified(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role string, negate bool) (int64, error)
}
