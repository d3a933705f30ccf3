package handler

import (
	"net/http"

	"github.com/msomdec/storefront/internal/service"
)

// WishlistHandler serves the caller's wishlist.
type WishlistHandler struct {
	wishlists *service.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlists *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

// HandleGet returns the caller's wishlist.
// GET /wishlist
func (h *WishlistHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	wl, err := h.wishlists.Get(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wl)
}

// HandleAdd saves a product.
// POST /wishlist/items
// Request: {"productId":1}
func (h *WishlistHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	var req wishlistItemRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if req.ProductID == nil {
		writeError(w, http.StatusBadRequest, "Invalid productId")
		return
	}

	wl, err := h.wishlists.Add(r.Context(), id.UserID, *req.ProductID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wl)
}

// HandleRemove drops a saved product.
// DELETE /wishlist/items/{productId}
func (h *WishlistHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	productID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}

	wl, err := h.wishlists.Remove(r.Context(), id.UserID, productID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wl)
}
