package handler

import (
	"net/http"
	"strconv"

	"github.com/msomdec/storefront/internal/service"
)

// ProductHandler serves the catalog.
type ProductHandler struct {
	products *service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// HandleList returns every product.
// GET /products
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// HandleGet returns one product.
// GET /products/{id}
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r, "id")
	if !ok {
		return
	}

	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// HandleCreate adds a product. Admin only.
// POST /products
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	product, err := h.products.Create(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// HandleUpdate changes the fields present in the body. Admin only.
// PUT /products/{id}
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r, "id")
	if !ok {
		return
	}

	var req productRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	product, err := h.products.Update(r.Context(), id, req.toPatch())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// HandleDelete removes a product and its cart and wishlist references.
// Admin only.
// DELETE /products/{id}
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// productIDFromPath parses a catalog id. An unparseable id cannot name a
// product, so it is reported as 404.
func productIDFromPath(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return 0, false
	}
	return id, true
}

// itemIDFromPath parses the productId of a cart or wishlist route.
func itemIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("productId"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid productId")
		return 0, false
	}
	return id, true
}
