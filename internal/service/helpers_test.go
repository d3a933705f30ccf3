package service_test

import (
	"path/filepath"
	"testing"

	"github.com/msomdec/storefront/internal/repository"
)

const testJWTSecret = "test-secret-key-for-unit-tests-0123456789"

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	dir := t.TempDir()
	return repository.New(repository.FileStores(repository.Paths{
		Users:     filepath.Join(dir, "users.json"),
		Products:  filepath.Join(dir, "products.json"),
		Carts:     filepath.Join(dir, "carts.json"),
		Wishlists: filepath.Join(dir, "wishlists.json"),
		Sequences: filepath.Join(dir, "sequences.json"),
	}))
}

func ptr[T any](v T) *T { return &v }
