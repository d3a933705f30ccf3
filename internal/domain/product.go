package domain

import "context"

type InventoryStatus string

const (
	InventoryInStock    InventoryStatus = "INSTOCK"
	InventoryOutOfStock InventoryStatus = "OUTOFSTOCK"
)

// InventoryStatusFor derives the inventory status from a stock quantity.
func InventoryStatusFor(quantity int) InventoryStatus {
	if quantity > 0 {
		return InventoryInStock
	}
	return InventoryOutOfStock
}

// Product is a catalog entry.
type Product struct {
	ID                int64           `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Image             string          `json:"image"`
	Category          string          `json:"category"`
	Price             float64         `json:"price"`
	Quantity          int             `json:"quantity"`
	InternalReference string          `json:"internalReference"`
	ShellID           int             `json:"shellId"`
	InventoryStatus   InventoryStatus `json:"inventoryStatus"`
	Rating            float64         `json:"rating"`
	CreatedAt         Timestamp       `json:"createdAt"`
	UpdatedAt         Timestamp       `json:"updatedAt"`
}

// Restock sets the quantity and recomputes the derived inventory status.
func (p *Product) Restock(quantity int) {
	p.Quantity = quantity
	p.InventoryStatus = InventoryStatusFor(quantity)
}

// ProductRepository defines persistence operations for the catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Create assigns the next product id and appends the product.
	Create(ctx context.Context, product *Product) error
	// Update applies mutate to the stored product and persists the result.
	// Returns ErrNotFound when no product has the given id.
	Update(ctx context.Context, id int64, mutate func(*Product) error) (*Product, error)
	Delete(ctx context.Context, id int64) error
}
