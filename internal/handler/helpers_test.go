package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/handler"
	"github.com/msomdec/storefront/internal/repository"
	"github.com/msomdec/storefront/internal/service"
	"github.com/msomdec/storefront/internal/store"
)

const (
	testJWTSecret  = "test-secret-for-handler-tests-0123456789"
	testAdminEmail = "admin@admin.com"
)

type testEnv struct {
	dir      string
	srv      *httptest.Server
	repos    *repository.Repositories
	services handler.Services
	tokens   *service.TokenSigner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithSecret(t, testJWTSecret)
}

func newTestEnvWithSecret(t *testing.T, secret string) *testEnv {
	t.Helper()
	dir := t.TempDir()
	repos := repository.New(repository.FileStores(repository.Paths{
		Users:     filepath.Join(dir, "users.json"),
		Products:  filepath.Join(dir, "products.json"),
		Carts:     filepath.Join(dir, "carts.json"),
		Wishlists: filepath.Join(dir, "wishlists.json"),
		Sequences: filepath.Join(dir, "sequences.json"),
	}))

	tokens := service.NewTokenSigner(secret, time.Hour)
	limiter := service.NewTokenBucket(100, 100)
	t.Cleanup(limiter.Stop)

	services := handler.Services{
		Auth:      service.NewAuthService(repos.Users, tokens, 4),
		Access:    service.NewAccessPolicy([]string{testAdminEmail}),
		Products:  service.NewProductService(repos.Products, repos.Carts, repos.Wishlists),
		Carts:     service.NewCartService(repos.Carts, repos.Products),
		Wishlists: service.NewWishlistService(repos.Wishlists, repos.Products),
		Limiter:   limiter,
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, services)
	srv := httptest.NewServer(handler.Wrap(mux, "*"))
	t.Cleanup(srv.Close)

	return &testEnv{dir: dir, srv: srv, repos: repos, services: services, tokens: tokens}
}

// path returns the location of a backing file inside the environment's data
// directory.
func (e *testEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

// userCount reads users.json directly.
func (e *testEnv) userCount(t *testing.T) int {
	t.Helper()
	users, err := store.NewFileStore[domain.User](e.path("users.json")).Load(t.Context())
	if err != nil {
		t.Fatalf("load users: %v", err)
	}
	return len(users)
}

// tokenFor signs a token directly, bypassing registration.
func (e *testEnv) tokenFor(t *testing.T, userID, email string) string {
	t.Helper()
	token, err := e.tokens.Issue(&domain.User{ID: userID, Email: email, Username: userID})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// do sends a request with an optional raw JSON body and bearer token.
func (e *testEnv) do(t *testing.T, method, path, body, token string) *http.Response {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (e *testEnv) seedProduct(t *testing.T, name string, quantity int) *domain.Product {
	t.Helper()
	p := &domain.Product{Name: name, Category: "test", Price: 9.99, Quantity: quantity}
	if err := e.repos.Products.Create(t.Context(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("%s %s: expected %d, got %d: %s", resp.Request.Method, resp.Request.URL.Path, want, resp.StatusCode, body)
	}
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return v
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	return decode[map[string]string](t, resp)["error"]
}
