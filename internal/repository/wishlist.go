package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/store"
)

// WishlistRepository implements domain.WishlistRepository on a record store.
type WishlistRepository struct {
	wishlists *store.Collection[domain.Wishlist]
}

// NewWishlistRepository creates a WishlistRepository owning s.
func NewWishlistRepository(s store.Store[domain.Wishlist]) *WishlistRepository {
	return &WishlistRepository{wishlists: store.NewCollection(s)}
}

func (r *WishlistRepository) GetByUser(ctx context.Context, userID string) (*domain.Wishlist, error) {
	all, err := r.wishlists.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load wishlists: %w", err)
	}
	if i := indexOfWishlist(all, userID); i >= 0 {
		return cloneWishlist(all[i]), nil
	}
	return nil, domain.ErrNotFound
}

func (r *WishlistRepository) Upsert(ctx context.Context, userID string, mutate func(*domain.Wishlist) error) (*domain.Wishlist, error) {
	var result *domain.Wishlist
	err := r.wishlists.Update(ctx, func(all []domain.Wishlist) ([]domain.Wishlist, error) {
		i := indexOfWishlist(all, userID)
		if i < 0 {
			all = append(all, *domain.NewWishlist(userID))
			i = len(all) - 1
		}
		wl := &all[i]
		if wl.ProductIDs == nil {
			wl.ProductIDs = []int64{}
		}
		if err := mutate(wl); err != nil {
			return nil, err
		}
		wl.UpdatedAt = domain.Now()
		result = cloneWishlist(*wl)
		return all, nil
	})
	if err != nil {
		return nil, fmt.Errorf("upsert wishlist for %s: %w", userID, err)
	}
	return result, nil
}

func (r *WishlistRepository) RemoveProduct(ctx context.Context, productID int64) (int, error) {
	changed := 0
	err := r.wishlists.Update(ctx, func(all []domain.Wishlist) ([]domain.Wishlist, error) {
		now := domain.Now()
		for i := range all {
			if !slices.Contains(all[i].ProductIDs, productID) {
				continue
			}
			all[i].Remove(productID)
			all[i].UpdatedAt = now
			changed++
		}
		return all, nil
	})
	if err != nil {
		return 0, fmt.Errorf("remove product %d from wishlists: %w", productID, err)
	}
	return changed, nil
}

func indexOfWishlist(all []domain.Wishlist, userID string) int {
	return slices.IndexFunc(all, func(w domain.Wishlist) bool { return w.UserID == userID })
}

func cloneWishlist(w domain.Wishlist) *domain.Wishlist {
	w.ProductIDs = slices.Clone(w.ProductIDs)
	if w.ProductIDs == nil {
		w.ProductIDs = []int64{}
	}
	return &w
}
