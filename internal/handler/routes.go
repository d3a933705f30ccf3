package handler

import (
	"net/http"

	"github.com/msomdec/storefront/internal/service"
)

// Services bundles what the routes depend on.
type Services struct {
	Auth      *service.AuthService
	Access    *service.AccessPolicy
	Products  *service.ProductService
	Carts     *service.CartService
	Wishlists *service.WishlistService
	// Limiter throttles the unauthenticated account and token endpoints.
	// Nil disables throttling.
	Limiter *service.TokenBucket
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, s Services) {
	authHandler := NewAuthHandler(s.Auth)
	productHandler := NewProductHandler(s.Products)
	cartHandler := NewCartHandler(s.Carts)
	wishlistHandler := NewWishlistHandler(s.Wishlists)

	limited := func(h http.HandlerFunc) http.Handler {
		if s.Limiter == nil {
			return h
		}
		return RateLimit(s.Limiter, h)
	}
	authed := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(s.Auth, h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(s.Auth, RequireAdmin(s.Access, h))
	}

	mux.HandleFunc("GET /health", HandleHealth)

	mux.Handle("POST /account", limited(authHandler.HandleAccount))
	mux.Handle("POST /token", limited(authHandler.HandleToken))

	mux.Handle("GET /products", authed(productHandler.HandleList))
	mux.Handle("GET /products/{id}", authed(productHandler.HandleGet))
	mux.Handle("POST /products", admin(productHandler.HandleCreate))
	mux.Handle("PUT /products/{id}", admin(productHandler.HandleUpdate))
	mux.Handle("DELETE /products/{id}", admin(productHandler.HandleDelete))

	mux.Handle("GET /cart", authed(cartHandler.HandleGet))
	mux.Handle("POST /cart/items", authed(cartHandler.HandleAddItem))
	mux.Handle("PATCH /cart/items/{productId}", authed(cartHandler.HandleSetQuantity))
	mux.Handle("DELETE /cart/items/{productId}", authed(cartHandler.HandleRemoveItem))

	mux.Handle("GET /wishlist", authed(wishlistHandler.HandleGet))
	mux.Handle("POST /wishlist/items", authed(wishlistHandler.HandleAdd))
	mux.Handle("DELETE /wishlist/items/{productId}", authed(wishlistHandler.HandleRemove))

	mux.HandleFunc("/", HandleNotFound)
}

// Wrap applies the middleware every response goes through.
func Wrap(h http.Handler, corsOrigin string) http.Handler {
	return Chain(h, LogRequests, RecoverPanic, SecurityHeaders, CORS(corsOrigin))
}
