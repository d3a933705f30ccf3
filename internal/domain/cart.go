package domain

import (
	"context"
	"fmt"
	"math"
	"slices"
)

// LineItem is a product and the quantity of it held in a cart.
type LineItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Cart holds the line items of a single user. Product ids are unique within Items.
type Cart struct {
	UserID    string     `json:"userId"`
	Items     []LineItem `json:"items"`
	UpdatedAt Timestamp  `json:"updatedAt"`
}

// NewCart returns an empty cart for the user.
func NewCart(userID string) *Cart {
	return &Cart{UserID: userID, Items: []LineItem{}, UpdatedAt: Now()}
}

// AddItem increases the quantity of an existing line or appends a new one.
// It fails with ErrInvalidInput, leaving the cart untouched, when the summed
// quantity would not fit in an int.
func (c *Cart) AddItem(productID int64, quantity int) error {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if quantity > 0 && c.Items[i].Quantity > math.MaxInt-quantity {
			return fmt.Errorf("%w: quantity too large", ErrInvalidInput)
		}
		c.Items[i].Quantity += quantity
		return nil
	}
	c.Items = append(c.Items, LineItem{ProductID: productID, Quantity: quantity})
	return nil
}

// SetItemQuantity overwrites the quantity of a line, appending it when absent.
func (c *Cart) SetItemQuantity(productID int64, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
	c.Items = append(c.Items, LineItem{ProductID: productID, Quantity: quantity})
}

// RemoveItem drops the line for productID. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID int64) {
	c.Items = slices.DeleteFunc(c.Items, func(li LineItem) bool {
		return li.ProductID == productID
	})
	if c.Items == nil {
		c.Items = []LineItem{}
	}
}

// CartRepository persists carts keyed by user id.
type CartRepository interface {
	GetByUser(ctx context.Context, userID string) (*Cart, error)
	// Upsert loads the user's cart, creating an empty one when absent, applies
	// mutate, stamps UpdatedAt and persists the whole collection.
	Upsert(ctx context.Context, userID string, mutate func(*Cart) error) (*Cart, error)
	// RemoveProduct drops productID from every cart and reports how many changed.
	RemoveProduct(ctx context.Context, productID int64) (int, error)
}
