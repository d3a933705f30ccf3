package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/store"
)

// CartRepository implements domain.CartRepository on a record store.
type CartRepository struct {
	carts *store.Collection[domain.Cart]
}

// NewCartRepository creates a CartRepository owning s.
func NewCartRepository(s store.Store[domain.Cart]) *CartRepository {
	return &CartRepository{carts: store.NewCollection(s)}
}

func (r *CartRepository) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	all, err := r.carts.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load carts: %w", err)
	}
	if i := indexOfCart(all, userID); i >= 0 {
		return cloneCart(all[i]), nil
	}
	return nil, domain.ErrNotFound
}

// Upsert finds the user's cart, appending an empty one when absent, applies
// mutate and persists the collection. If mutate fails nothing is written.
func (r *CartRepository) Upsert(ctx context.Context, userID string, mutate func(*domain.Cart) error) (*domain.Cart, error) {
	var result *domain.Cart
	err := r.carts.Update(ctx, func(all []domain.Cart) ([]domain.Cart, error) {
		i := indexOfCart(all, userID)
		if i < 0 {
			all = append(all, *domain.NewCart(userID))
			i = len(all) - 1
		}
		cart := &all[i]
		if cart.Items == nil {
			cart.Items = []domain.LineItem{}
		}
		if err := mutate(cart); err != nil {
			return nil, err
		}
		cart.UpdatedAt = domain.Now()
		result = cloneCart(*cart)
		return all, nil
	})
	if err != nil {
		return nil, fmt.Errorf("upsert cart for %s: %w", userID, err)
	}
	return result, nil
}

// RemoveProduct drops productID from every cart holding it.
func (r *CartRepository) RemoveProduct(ctx context.Context, productID int64) (int, error) {
	changed := 0
	err := r.carts.Update(ctx, func(all []domain.Cart) ([]domain.Cart, error) {
		now := domain.Now()
		for i := range all {
			before := len(all[i].Items)
			all[i].RemoveItem(productID)
			if len(all[i].Items) != before {
				all[i].UpdatedAt = now
				changed++
			}
		}
		return all, nil
	})
	if err != nil {
		return 0, fmt.Errorf("remove product %d from carts: %w", productID, err)
	}
	return changed, nil
}

func indexOfCart(all []domain.Cart, userID string) int {
	return slices.IndexFunc(all, func(c domain.Cart) bool { return c.UserID == userID })
}

func cloneCart(c domain.Cart) *domain.Cart {
	c.Items = slices.Clone(c.Items)
	if c.Items == nil {
		c.Items = []domain.LineItem{}
	}
	return &c
}
