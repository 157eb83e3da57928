package application

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/furnistore/backend/internal/domain/entity"
	repo "github.com/furnistore/backend/internal/domain/repository"
)

const recentOrdersLimit = 5

// Dashboard is the read-only rollup shown on the admin landing page.
type Dashboard struct {
	TotalUsers    int64           `json:"totalUsers"`
	TotalProducts int64           `json:"totalProducts"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	RecentOrders  []entity.Order  `json:"recentOrders"`
}

// AdminService aggregates over the other stores. Read-only; no windows or
// pagination, the rollups cover everything ever written.
type AdminService struct {
	Users    repo.UserRepository
	Products repo.ProductRepository
	Orders   repo.OrderRepository
}

func NewAdminService(users repo.UserRepository, products repo.ProductRepository, orders repo.OrderRepository) *AdminService {
	return &AdminService{Users: users, Products: products, Orders: orders}
}

// GetDashboard counts non-admin users, products, and orders, and sums revenue
// over all orders' total amounts.
func (s *AdminService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	users, err := s.Users.CountByRole(ctx, entity.RoleAdmin, true)
	if err != nil {
		return nil, err
	}
	products, err := s.Products.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.Orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Orders.SumTotalAmount(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.Orders.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		TotalUsers:    users,
		TotalProducts: products,
		TotalOrders:   orders,
		TotalRevenue:  revenue,
		RecentOrders:  recent,
	}, nil
}
