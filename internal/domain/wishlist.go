package domain

import (
	"context"
	"slices"
)

// Wishlist is the set of product ids a user saved, in insertion order.
type Wishlist struct {
	UserID     string    `json:"userId"`
	ProductIDs []int64   `json:"productIds"`
	UpdatedAt  Timestamp `json:"updatedAt"`
}

// NewWishlist returns an empty wishlist for the user.
func NewWishlist(userID string) *Wishlist {
	return &Wishlist{UserID: userID, ProductIDs: []int64{}, UpdatedAt: Now()}
}

// Add appends productID unless it is already present.
func (w *Wishlist) Add(productID int64) {
	if !slices.Contains(w.ProductIDs, productID) {
		w.ProductIDs = append(w.ProductIDs, productID)
	}
}

// Remove drops productID. Removing an absent id is a no-op.
func (w *Wishlist) Remove(productID int64) {
	w.ProductIDs = slices.DeleteFunc(w.ProductIDs, func(id int64) bool {
		return id == productID
	})
	if w.ProductIDs == nil {
		w.ProductIDs = []int64{}
	}
}

// WishlistRepository persists wishlists keyed by user id.
type WishlistRepository interface {
	GetByUser(ctx context.Context, userID string) (*Wishlist, error)
	Upsert(ctx context.Context, userID string, mutate func(*Wishlist) error) (*Wishlist, error)
	RemoveProduct(ctx context.Context, productID int64) (int, error)
}
