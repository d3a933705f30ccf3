package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/store"
)

const productSequence = "products"

// ProductRepository implements domain.ProductRepository on a record store.
type ProductRepository struct {
	products *store.Collection[domain.Product]
	ids      domain.SequenceRepository
}

// NewProductRepository creates a ProductRepository owning s. Product ids are
// drawn from ids so they are never reused after a delete.
func NewProductRepository(s store.Store[domain.Product], ids domain.SequenceRepository) *ProductRepository {
	return &ProductRepository{products: store.NewCollection(s), ids: ids}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	all, err := r.products.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return all, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	all, err := r.products.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if i := indexOfProduct(all, id); i >= 0 {
		return &all[i], nil
	}
	return nil, domain.ErrNotFound
}

func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Create assigns the next id and appends product. The id is one past the
// largest of the persisted sequence, the highest existing id and the
// collection length, which keeps seeded files without a sequence safe.
// product receives the assigned fields only once the write has succeeded.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	var created domain.Product
	err := r.products.Update(ctx, func(all []domain.Product) ([]domain.Product, error) {
		floor := int64(len(all))
		for _, p := range all {
			floor = max(floor, p.ID)
		}
		id, err := r.ids.Next(ctx, productSequence, floor)
		if err != nil {
			return nil, err
		}

		now := domain.Now()
		created = *product
		created.ID = id
		created.InventoryStatus = domain.InventoryStatusFor(created.Quantity)
		created.CreatedAt = now
		created.UpdatedAt = now
		return append(all, created), nil
	})
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	*product = created
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, mutate func(*domain.Product) error) (*domain.Product, error) {
	var updated domain.Product
	err := r.products.Update(ctx, func(all []domain.Product) ([]domain.Product, error) {
		i := indexOfProduct(all, id)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		p := all[i]
		if err := mutate(&p); err != nil {
			return nil, err
		}
		p.ID = id
		p.InventoryStatus = domain.InventoryStatusFor(p.Quantity)
		p.UpdatedAt = domain.Now()
		all[i] = p
		updated = p
		return all, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	return &updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	err := r.products.Update(ctx, func(all []domain.Product) ([]domain.Product, error) {
		i := indexOfProduct(all, id)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		return slices.Delete(all, i, i+1), nil
	})
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func indexOfProduct(all []domain.Product, id int64) int {
	return slices.IndexFunc(all, func(p domain.Product) bool { return p.ID == id })
}
