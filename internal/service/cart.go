package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/storefront/internal/domain"
)

// CartService manages per-user shopping carts.
type CartService struct {
	carts    domain.CartRepository
	products domain.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(carts domain.CartRepository, products domain.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the user's cart, or an empty one that is not persisted.
func (s *CartService) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewCart(userID), nil
	}
	return cart, err
}

// AddItem adds quantity of productID, accumulating onto an existing line.
// The product must exist.
func (s *CartService) AddItem(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error) {
	if err := validateLine(productID, quantity); err != nil {
		return nil, err
	}
	if err := requireProduct(ctx, s.products, productID); err != nil {
		return nil, err
	}

	return s.carts.Upsert(ctx, userID, func(c *domain.Cart) error {
		return c.AddItem(productID, quantity)
	})
}

// SetItemQuantity replaces the quantity of productID, adding the line when
// absent.
func (s *CartService) SetItemQuantity(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error) {
	if err := validateLine(productID, quantity); err != nil {
		return nil, err
	}

	return s.carts.Upsert(ctx, userID, func(c *domain.Cart) error {
		c.SetItemQuantity(productID, quantity)
		return nil
	})
}

// RemoveItem drops productID from the cart. A user without a cart gets an
// empty one back and nothing is persisted.
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID int64) (*domain.Cart, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: invalid productId", domain.ErrInvalidInput)
	}

	if _, err := s.carts.GetByUser(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewCart(userID), nil
		}
		return nil, err
	}

	return s.carts.Upsert(ctx, userID, func(c *domain.Cart) error {
		c.RemoveItem(productID)
		return nil
	})
}

func validateLine(productID int64, quantity int) error {
	if productID <= 0 || quantity <= 0 {
		return fmt.Errorf("%w: invalid productId or quantity", domain.ErrInvalidInput)
	}
	return nil
}

func requireProduct(ctx context.Context, products domain.ProductRepository, productID int64) error {
	ok, err := products.Exists(ctx, productID)
	if err != nil {
		return fmt.Errorf("check product %d: %w", productID, err)
	}
	if !ok {
		return fmt.Errorf("%w: product not found", domain.ErrNotFound)
	}
	return nil
}
