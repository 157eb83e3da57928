package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/furnistore/backend/internal/domain/entity"
	repo "github.com/furnistore/backend/internal/domain/repository"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

// OrderService converts a cart into an immutable order. This is the only
// multi-step write in the system; the order insert happens first and the cart is
// cleared only after it succeeds, so a failed write leaves the cart untouched.
type OrderService struct {
	Orders   repo.OrderRepository
	Carts    repo.CartRepository
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

func NewOrderService(orders repo.OrderRepository, carts repo.CartRepository, products repo.ProductRepository, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Carts: carts, Products: products, Logger: logger}
}

// PlaceOrder snapshots the cart against live catalog data. Cart line prices are
// advisory only; the price and name written into the order are whatever the
// catalog holds at conversion time, so checkout always reflects current pricing.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, addr entity.Address) (*entity.Order, error) {
	cart, err := s.Carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	ids := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.Products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	total := decimal.Zero
	for _, line := range cart.Items {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
		}
		item := entity.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  line.Quantity,
		}
		if len(p.Images) > 0 {
			item.Image = p.Images[0].URL
		}
		items = append(items, item)
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := &entity.Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: addr,
		TotalAmount:     total,
		PaymentStatus:   entity.PaymentPending,
		OrderStatus:     entity.OrderPending,
	}
	if err := s.Orders.Create(ctx, order); err != nil {
		// cart stays as it was; the caller may retry
		return nil, err
	}

	if err := s.Carts.Clear(ctx, userID); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).
				WithField("order_id", order.ID).Error("cart clear after order failed")
		}
		return nil, err
	}
	return order, nil
}

// ListOrders returns the user's own orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}

// GetOrder fetches one order. Non-admin callers only see their own.
func (s *OrderService) GetOrder(ctx context.Context, id, userID string, isAdmin bool) (*entity.Order, error) {
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !isAdmin && o.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus advances an order's status; admin only, enforced at the route.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.Orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, ErrOrderNotFound
	}
	return s.Orders.GetByID(ctx, id)
}
