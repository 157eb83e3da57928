package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnistore/backend/internal/domain/entity"
)

func TestDashboardRollup(t *testing.T) {
	users := newUserRepo(
		&entity.User{ID: "u1", Email: "a@x.dev", Role: entity.RoleUser},
		&entity.User{ID: "u2", Email: "b@x.dev", Role: entity.RoleUser},
		&entity.User{ID: "u3", Email: "admin@x.dev", Role: entity.RoleAdmin},
	)
	products := newProductRepo(
		testProduct("p1", "Sofa", "100.00"),
		testProduct("p2", "Bed", "200.00"),
	)
	orders := &mockOrderRepo{sum: decimal.RequireFromString("2500.00")}
	for i := 0; i < 7; i++ {
		require.NoError(t, orders.Create(context.Background(), &entity.Order{UserID: "u1"}))
	}

	svc := NewAdminService(users, products, orders)
	d, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), d.TotalUsers, "admin accounts stay out of the user count")
	assert.Equal(t, int64(2), d.TotalProducts)
	assert.Equal(t, int64(7), d.TotalOrders)
	assert.True(t, d.TotalRevenue.Equal(decimal.RequireFromString("2500.00")))
	require.Len(t, d.RecentOrders, 5)
	assert.Equal(t, "order-7", d.RecentOrders[0].ID, "recent orders come newest first")
}
