package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/repository"
	"github.com/msomdec/storefront/internal/service"
)

func newTestCartService(t *testing.T) (*service.CartService, *repository.Repositories, int64) {
	t.Helper()
	repos := newTestRepos(t)
	p := &domain.Product{Name: "Mug", Category: "Kitchen", Price: 5, Quantity: 10}
	if err := repos.Products.Create(context.Background(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return service.NewCartService(repos.Carts, repos.Products), repos, p.ID
}

func TestCartService_GetWithoutCartDoesNotPersist(t *testing.T) {
	svc, repos, _ := newTestCartService(t)
	ctx := context.Background()

	cart, err := svc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cart.UserID != "user-1" || cart.Items == nil || len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
	if _, err := repos.Carts.GetByUser(ctx, "user-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected no persisted cart, got %v", err)
	}
}

func TestCartService_AddItemAccumulates(t *testing.T) {
	svc, _, pid := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "user-1", pid, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	cart, err := svc.AddItem(ctx, "user-1", pid, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %v", cart.Items)
	}
}

func TestCartService_AddItemValidation(t *testing.T) {
	svc, repos, pid := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "user-1", pid, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("zero quantity: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "user-1", 0, 1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("zero product: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "user-1", 999, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing product: expected ErrNotFound, got %v", err)
	}
	if _, err := repos.Carts.GetByUser(ctx, "user-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("failed adds must not create a cart, got %v", err)
	}
}

func TestCartService_AddItemOverflowKeepsStoredQuantity(t *testing.T) {
	svc, repos, pid := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "user-1", pid, math.MaxInt); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.AddItem(ctx, "user-1", pid, 1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	stored, err := repos.Carts.GetByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(stored.Items) != 1 || stored.Items[0].Quantity != math.MaxInt {
		t.Fatalf("expected stored quantity %d, got %v", math.MaxInt, stored.Items)
	}
}

func TestCartService_SetItemQuantity(t *testing.T) {
	svc, _, pid := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "user-1", pid, 4); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	cart, err := svc.SetItemQuantity(ctx, "user-1", pid, 1)
	if err != nil {
		t.Fatalf("SetItemQuantity: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", cart.Items[0].Quantity)
	}

	// Absent lines are appended; the product is not checked.
	cart, err = svc.SetItemQuantity(ctx, "user-1", 77, 2)
	if err != nil {
		t.Fatalf("SetItemQuantity: %v", err)
	}
	if len(cart.Items) != 2 || cart.Items[1] != (domain.LineItem{ProductID: 77, Quantity: 2}) {
		t.Fatalf("unexpected items %v", cart.Items)
	}

	if _, err := svc.SetItemQuantity(ctx, "user-1", pid, -1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, repos, pid := newTestCartService(t)
	ctx := context.Background()

	cart, err := svc.RemoveItem(ctx, "user-2", pid)
	if err != nil {
		t.Fatalf("RemoveItem without cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %v", cart.Items)
	}
	if _, err := repos.Carts.GetByUser(ctx, "user-2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("remove on absent cart must not persist, got %v", err)
	}

	if _, err := svc.AddItem(ctx, "user-1", pid, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	cart, err = svc.RemoveItem(ctx, "user-1", pid)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %v", cart.Items)
	}

	if _, err := svc.RemoveItem(ctx, "user-1", -4); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
