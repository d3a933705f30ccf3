package handler

import "github.com/msomdec/storefront/internal/service"

// accountRequest is the body of POST /account.
type accountRequest struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r accountRequest) toInput() service.RegisterInput {
	return service.RegisterInput{
		Username:  r.Username,
		Firstname: r.Firstname,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// tokenRequest is the body of POST /token.
type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// productRequest is the body of POST and PUT /products. Absent fields stay
// nil; creation requires name, category, price and quantity.
type productRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

func (r productRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        deref(r.Name),
		Description: deref(r.Description),
		Image:       deref(r.Image),
		Category:    deref(r.Category),
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}

func (r productRequest) toPatch() service.ProductPatch {
	return service.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}

// cartItemRequest is the body of POST /cart/items. Quantity defaults to 1.
type cartItemRequest struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// quantityRequest is the body of PATCH /cart/items/{productId}.
type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

// wishlistItemRequest is the body of POST /wishlist/items.
type wishlistItemRequest struct {
	ProductID *int64 `json:"productId"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
