package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/storefront/internal/domain"
)

// WishlistService manages per-user wishlists.
type WishlistService struct {
	wishlists domain.WishlistRepository
	products  domain.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlists domain.WishlistRepository, products domain.ProductRepository) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products}
}

// Get returns the user's wishlist, or an empty one that is not persisted.
func (s *WishlistService) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	wl, err := s.wishlists.GetByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewWishlist(userID), nil
	}
	return wl, err
}

// Add saves productID. Adding a product twice keeps a single entry.
func (s *WishlistService) Add(ctx context.Context, userID string, productID int64) (*domain.Wishlist, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: invalid productId", domain.ErrInvalidInput)
	}
	if err := requireProduct(ctx, s.products, productID); err != nil {
		return nil, err
	}

	return s.wishlists.Upsert(ctx, userID, func(w *domain.Wishlist) error {
		w.Add(productID)
		return nil
	})
}

// Remove drops productID. A user without a wishlist gets an empty one back
// and nothing is persisted.
func (s *WishlistService) Remove(ctx context.Context, userID string, productID int64) (*domain.Wishlist, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: invalid productId", domain.ErrInvalidInput)
	}

	if _, err := s.wishlists.GetByUser(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewWishlist(userID), nil
		}
		return nil, err
	}

	return s.wishlists.Upsert(ctx, userID, func(w *domain.Wishlist) error {
		w.Remove(productID)
		return nil
	})
}
