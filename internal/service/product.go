package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/msomdec/storefront/internal/domain"
)

// ProductInput is the body of a product creation. Price and Quantity are
// pointers so an omitted field can be told apart from zero.
type ProductInput struct {
	Name        string
	Description string
	Image       string
	Category    string
	Price       *float64
	Quantity    *int
}

// ProductPatch carries the fields to change on an existing product. Nil
// fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Image       *string
	Category    *string
	Price       *float64
	Quantity    *int
}

// ProductService handles catalog management. Deleting a product also removes
// it from every cart and wishlist.
type ProductService struct {
	products  domain.ProductRepository
	carts     domain.CartRepository
	wishlists domain.WishlistRepository
}

// NewProductService creates a new ProductService.
func NewProductService(products domain.ProductRepository, carts domain.CartRepository, wishlists domain.WishlistRepository) *ProductService {
	return &ProductService{products: products, carts: carts, wishlists: wishlists}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	return p, productNotFound(err)
}

// Create validates in and stores a new product with generated code,
// internal reference and shell id.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Category == "" || in.Price == nil || in.Quantity == nil {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrInvalidInput)
	}
	if err := validateStock(in.Price, in.Quantity); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Code:              fmt.Sprintf("PROD-%d", time.Now().UnixMilli()),
		Name:              in.Name,
		Description:       in.Description,
		Image:             in.Image,
		Category:          in.Category,
		Price:             *in.Price,
		Quantity:          *in.Quantity,
		InternalReference: "REF-" + randomBase36(9),
		ShellID:           rand.IntN(1000),
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update applies patch to the product with the given id.
func (s *ProductService) Update(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	if patch.Category != nil && strings.TrimSpace(*patch.Category) == "" {
		return nil, fmt.Errorf("%w: category must not be empty", domain.ErrInvalidInput)
	}
	if err := validateStock(patch.Price, patch.Quantity); err != nil {
		return nil, err
	}

	updated, err := s.products.Update(ctx, id, func(p *domain.Product) error {
		if patch.Name != nil {
			p.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Category != nil {
			p.Category = strings.TrimSpace(*patch.Category)
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Quantity != nil {
			p.Restock(*patch.Quantity)
		}
		return nil
	})
	return updated, productNotFound(err)
}

// Delete removes the product, then drops it from every cart and wishlist.
// The cascade is not atomic with the delete: a failure part way leaves the
// product gone and some references behind.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return productNotFound(err)
	}

	carts, err := s.carts.RemoveProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("cascade product %d to carts: %w", id, err)
	}
	wishlists, err := s.wishlists.RemoveProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("cascade product %d to wishlists: %w", id, err)
	}

	slog.InfoContext(ctx, "product deleted", "product_id", id, "carts", carts, "wishlists", wishlists)
	return nil
}

// productNotFound gives repository not-found errors a client-facing detail.
func productNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: product not found", domain.ErrNotFound)
	}
	return err
}

func validateStock(price *float64, quantity *int) error {
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if quantity != nil && *quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func randomBase36(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteString(strconv.FormatInt(int64(rand.IntN(36)), 36))
	}
	return b.String()
}
