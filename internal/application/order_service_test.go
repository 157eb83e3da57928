package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnistore/backend/internal/domain/entity"
)

var testAddr = entity.Address{
	Street:     "12 Elm Street",
	City:       "Springfield",
	State:      "IL",
	PostalCode: "62701",
	Phone:      "+1 555 0100",
}

func TestPlaceOrder(t *testing.T) {
	products := newProductRepo(
		testProduct("p1", "Oslo Sofa", "1000.00"),
		testProduct("p2", "Luna Bed", "500.00"),
	)
	carts := newCartRepo()
	orders := &mockOrderRepo{}
	svc := NewOrderService(orders, carts, products, nil)

	require.NoError(t, carts.UpsertItem(context.Background(), "u1", "p1", 2, decimal.RequireFromString("1000.00")))
	require.NoError(t, carts.UpsertItem(context.Background(), "u1", "p2", 1, decimal.RequireFromString("500.00")))

	order, err := svc.PlaceOrder(context.Background(), "u1", testAddr)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.Equal(t, entity.OrderPending, order.OrderStatus)
	assert.Equal(t, testAddr, order.ShippingAddress)
	require.Len(t, order.Items, 2)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("2500.00")))

	// cart is emptied only after the order is written
	cart, err := carts.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := NewOrderService(&mockOrderRepo{}, newCartRepo(), newProductRepo(), nil)

	_, err := svc.PlaceOrder(context.Background(), "u1", testAddr)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderUsesLivePrices(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	carts := newCartRepo()
	svc := NewOrderService(&mockOrderRepo{}, carts, products, nil)

	// line was added when the product cost 80
	require.NoError(t, carts.UpsertItem(context.Background(), "u1", "p1", 1, decimal.RequireFromString("80.00")))

	order, err := svc.PlaceOrder(context.Background(), "u1", testAddr)
	require.NoError(t, err)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("100.00")),
		"order snapshots the catalog price, not the cart line price")
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("100.00")))
}

func TestPlaceOrderCreateFailureKeepsCart(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	carts := newCartRepo()
	orders := &mockOrderRepo{createErr: errors.New("insert failed")}
	svc := NewOrderService(orders, carts, products, nil)

	require.NoError(t, carts.UpsertItem(context.Background(), "u1", "p1", 1, decimal.RequireFromString("100.00")))

	_, err := svc.PlaceOrder(context.Background(), "u1", testAddr)
	require.Error(t, err)
	assert.Zero(t, carts.clearCalls, "cart must not be cleared when the order write fails")

	cart, err := carts.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestOrderSnapshotImmune(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	carts := newCartRepo()
	orders := &mockOrderRepo{}
	svc := NewOrderService(orders, carts, products, nil)

	require.NoError(t, carts.UpsertItem(context.Background(), "u1", "p1", 1, decimal.RequireFromString("100.00")))
	placed, err := svc.PlaceOrder(context.Background(), "u1", testAddr)
	require.NoError(t, err)

	// catalog edits after placement never reach the stored order
	products.byID["p1"].Name = "Renamed Sofa"
	products.byID["p1"].Price = decimal.RequireFromString("999.00")

	got, err := svc.GetOrder(context.Background(), placed.ID, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, "Sofa", got.Items[0].Name)
	assert.True(t, got.Items[0].Price.Equal(decimal.RequireFromString("100.00")))
}

func TestGetOrderScoping(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	carts := newCartRepo()
	svc := NewOrderService(&mockOrderRepo{}, carts, products, nil)

	require.NoError(t, carts.UpsertItem(context.Background(), "u1", "p1", 1, decimal.RequireFromString("100.00")))
	placed, err := svc.PlaceOrder(context.Background(), "u1", testAddr)
	require.NoError(t, err)

	_, err = svc.GetOrder(context.Background(), placed.ID, "someone-else", false)
	assert.ErrorIs(t, err, ErrOrderNotFound, "another user's order reads as missing, not forbidden")

	got, err := svc.GetOrder(context.Background(), placed.ID, "someone-else", true)
	require.NoError(t, err, "admins may read any order")
	assert.Equal(t, placed.ID, got.ID)
}

func TestUpdateStatus(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	carts := newCartRepo()
	svc := NewOrderService(&mockOrderRepo{}, carts, products, nil)

	require.NoError(t, carts.UpsertItem(context.Background(), "u1", "p1", 1, decimal.RequireFromString("100.00")))
	placed, err := svc.PlaceOrder(context.Background(), "u1", testAddr)
	require.NoError(t, err)

	got, err := svc.UpdateStatus(context.Background(), placed.ID, entity.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipped, got.OrderStatus)

	_, err = svc.UpdateStatus(context.Background(), placed.ID, "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), "missing", entity.OrderShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersNewestFirst(t *testing.T) {
	products := newProductRepo(testProduct("p1", "Sofa", "100.00"))
	carts := newCartRepo()
	svc := NewOrderService(&mockOrderRepo{}, carts, products, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, carts.UpsertItem(context.Background(), "u1", "p1", 1, decimal.RequireFromString("100.00")))
		_, err := svc.PlaceOrder(context.Background(), "u1", testAddr)
		require.NoError(t, err)
	}

	orders, err := svc.ListOrders(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "order-3", orders[0].ID)
	assert.Equal(t, "order-1", orders[2].ID)
}
