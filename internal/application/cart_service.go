package application

import (
	"context"
	"errors"

	repo "github.com/furnistore/backend/internal/domain/repository"

	"github.com/furnistore/backend/internal/domain/entity"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrItemNotFound    = errors.New("item not in cart")
	ErrProductNotFound = errors.New("product not found")
)

// CartService owns the per-user cart aggregate. Lines merge by product: adding a
// product already in the cart sums quantities instead of appending a second line.
type CartService struct {
	Carts    repo.CartRepository
	Products repo.ProductRepository
}

func NewCartService(carts repo.CartRepository, products repo.ProductRepository) *CartService {
	return &CartService{Carts: carts, Products: products}
}

// AddItem snapshots the current catalog price onto the line. The snapshot is
// advisory for display; checkout re-resolves live prices regardless.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, qty int) (*entity.Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}
	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if err := s.Carts.UpsertItem(ctx, userID, productID, qty, p.Price); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// SetItemQuantity replaces a line's quantity. Quantities below 1 are rejected;
// removal goes through RemoveItem.
func (s *CartService) SetItemQuantity(ctx context.Context, userID, productID string, qty int) (*entity.Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}
	ok, err := s.Carts.SetItemQuantity(ctx, userID, productID, qty)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrItemNotFound
	}
	return s.GetCart(ctx, userID)
}

// RemoveItem is idempotent; removing an absent line succeeds.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*entity.Cart, error) {
	if err := s.Carts.RemoveItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// GetCart returns the cart with each line's product resolved for display and
// the total recomputed from current lines. It never fails merely because the
// user has no cart yet.
func (s *CartService) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := s.Carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.Products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		cart.Items[i].Product = products[cart.Items[i].ProductID]
	}

	cart.Total = cart.ComputeTotal()
	return cart, nil
}

// Clear empties the cart. Used by order conversion after a successful write.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.Carts.Clear(ctx, userID)
}
