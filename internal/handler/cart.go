package handler

import (
	"net/http"

	"github.com/msomdec/storefront/internal/service"
)

// CartHandler serves the caller's cart.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// HandleGet returns the caller's cart.
// GET /cart
func (h *CartHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	cart, err := h.carts.Get(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// HandleAddItem adds to the quantity of a product.
// POST /cart/items
// Request: {"productId":1,"quantity":2}
func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	var req cartItemRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if req.ProductID == nil {
		writeError(w, http.StatusBadRequest, "Invalid productId or quantity")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.carts.AddItem(r.Context(), id.UserID, *req.ProductID, quantity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// HandleSetQuantity sets the quantity of a product line.
// PATCH /cart/items/{productId}
// Request: {"quantity":3}
func (h *CartHandler) HandleSetQuantity(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	productID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}
	var req quantityRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "Invalid productId or quantity")
		return
	}

	cart, err := h.carts.SetItemQuantity(r.Context(), id.UserID, productID, *req.Quantity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// HandleRemoveItem drops a product line.
// DELETE /cart/items/{productId}
func (h *CartHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	productID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}

	cart, err := h.carts.RemoveItem(r.Context(), id.UserID, productID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}
