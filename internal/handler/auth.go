package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/storefront/internal/service"
)

// AuthHandler handles account creation and token issuance.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleAccount registers a user.
// POST /account
// Request:  {"username":"...","firstname":"...","email":"...","password":"..."}
// Response: 201 {"message":"Account created"}
func (h *AuthHandler) HandleAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.auth.Register(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "account created", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Account created"})
}

// HandleToken exchanges credentials for a bearer token.
// POST /token
// Request:  {"email":"...","password":"..."}
// Response: {"token":"..."}
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
