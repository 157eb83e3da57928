package application

import (
	"context"

	"github.com/furnistore/backend/internal/domain/entity"
	repo "github.com/furnistore/backend/internal/domain/repository"
)

// WishlistService owns the per-user wishlist set.
type WishlistService struct {
	Wishlists repo.WishlistRepository
	Products  repo.ProductRepository
}

func NewWishlistService(wishlists repo.WishlistRepository, products repo.ProductRepository) *WishlistService {
	return &WishlistService{Wishlists: wishlists, Products: products}
}

// Add is idempotent; wishlisting a product twice keeps a single entry.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) ([]entity.WishlistItem, error) {
	if _, err := s.Products.GetByID(ctx, productID); err != nil {
		return nil, ErrProductNotFound
	}
	if err := s.Wishlists.Add(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Remove is idempotent.
func (s *WishlistService) Remove(ctx context.Context, userID, productID string) ([]entity.WishlistItem, error) {
	if err := s.Wishlists.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Get returns the wishlist in insertion order with products resolved.
func (s *WishlistService) Get(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	items, err := s.Wishlists.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.Products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Product = products[items[i].ProductID]
	}
	return items, nil
}
