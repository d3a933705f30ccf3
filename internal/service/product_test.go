package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/repository"
	"github.com/msomdec/storefront/internal/service"
)

func newTestProductService(t *testing.T) (*service.ProductService, *repository.Repositories) {
	t.Helper()
	repos := newTestRepos(t)
	return service.NewProductService(repos.Products, repos.Carts, repos.Wishlists), repos
}

func validProduct() service.ProductInput {
	return service.ProductInput{
		Name:     "Mug",
		Category: "Kitchen",
		Price:    ptr(12.5),
		Quantity: ptr(3),
	}
}

func TestProductService_Create(t *testing.T) {
	svc, _ := newTestProductService(t)

	p, err := svc.Create(context.Background(), validProduct())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if p.ID != 1 {
		t.Fatalf("expected id 1, got %d", p.ID)
	}
	if !regexp.MustCompile(`^PROD-\d+$`).MatchString(p.Code) {
		t.Fatalf("unexpected code %q", p.Code)
	}
	if !regexp.MustCompile(`^REF-[0-9a-z]{9}$`).MatchString(p.InternalReference) {
		t.Fatalf("unexpected internal reference %q", p.InternalReference)
	}
	if p.ShellID < 0 || p.ShellID >= 1000 {
		t.Fatalf("shell id out of range: %d", p.ShellID)
	}
	if p.Rating != 0 {
		t.Fatalf("expected rating 0, got %v", p.Rating)
	}
	if p.InventoryStatus != domain.InventoryInStock {
		t.Fatalf("expected INSTOCK, got %s", p.InventoryStatus)
	}
}

func TestProductService_CreateZeroQuantityIsOutOfStock(t *testing.T) {
	svc, _ := newTestProductService(t)

	in := validProduct()
	in.Quantity = ptr(0)
	p, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.InventoryStatus != domain.InventoryOutOfStock {
		t.Fatalf("expected OUTOFSTOCK, got %s", p.InventoryStatus)
	}
}

func TestProductService_CreateValidation(t *testing.T) {
	svc, repos := newTestProductService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*service.ProductInput)
	}{
		{"missing name", func(in *service.ProductInput) { in.Name = "" }},
		{"missing category", func(in *service.ProductInput) { in.Category = " " }},
		{"missing price", func(in *service.ProductInput) { in.Price = nil }},
		{"missing quantity", func(in *service.ProductInput) { in.Quantity = nil }},
		{"negative price", func(in *service.ProductInput) { in.Price = ptr(-1.0) }},
		{"negative quantity", func(in *service.ProductInput) { in.Quantity = ptr(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProduct()
			tt.mutate(&in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	all, err := repos.Products.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no products stored, got %d", len(all))
	}
}

func TestProductService_UpdatePartial(t *testing.T) {
	svc, _ := newTestProductService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, validProduct())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, p.ID, service.ProductPatch{Quantity: ptr(0), Description: ptr("sold out")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Mug" || updated.Price != 12.5 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.Description != "sold out" || updated.Quantity != 0 {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.InventoryStatus != domain.InventoryOutOfStock {
		t.Fatalf("expected OUTOFSTOCK, got %s", updated.InventoryStatus)
	}
	if updated.Code != p.Code || updated.CreatedAt != p.CreatedAt {
		t.Fatal("generated fields must survive an update")
	}
}

func TestProductService_UpdateErrors(t *testing.T) {
	svc, _ := newTestProductService(t)
	ctx := context.Background()

	if _, err := svc.Update(ctx, 42, service.ProductPatch{Name: ptr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	p, err := svc.Create(ctx, validProduct())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Update(ctx, p.ID, service.ProductPatch{Price: ptr(-3.0)}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Update(ctx, p.ID, service.ProductPatch{Name: ptr("")}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProductService_DeleteCascades(t *testing.T) {
	svc, repos := newTestProductService(t)
	ctx := context.Background()
	carts := service.NewCartService(repos.Carts, repos.Products)
	wishlists := service.NewWishlistService(repos.Wishlists, repos.Products)

	keep, err := svc.Create(ctx, validProduct())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	gone, err := svc.Create(ctx, validProduct())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := carts.AddItem(ctx, "user-1", keep.ID, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := carts.AddItem(ctx, "user-1", gone.ID, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := wishlists.Add(ctx, "user-1", gone.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.Delete(ctx, gone.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.Get(ctx, gone.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	cart, err := carts.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get cart: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != keep.ID {
		t.Fatalf("expected only product %d in cart, got %v", keep.ID, cart.Items)
	}
	wl, err := wishlists.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get wishlist: %v", err)
	}
	if len(wl.ProductIDs) != 0 {
		t.Fatalf("expected empty wishlist, got %v", wl.ProductIDs)
	}

	if err := svc.Delete(ctx, gone.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
