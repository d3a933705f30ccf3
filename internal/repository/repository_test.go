package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/msomdec/storefront/internal/repository"
	"github.com/msomdec/storefront/internal/store/sqlite"
)

// forEachBackend runs fn once against JSON file stores and once against the
// SQLite document backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, repos *repository.Repositories)) {
	t.Helper()
	forEachStores(t, func(t *testing.T, stores repository.Stores) {
		fn(t, repository.New(stores))
	})
}

// forEachStores is forEachBackend for tests that also inspect the raw stores.
func forEachStores(t *testing.T, fn func(t *testing.T, stores repository.Stores)) {
	t.Helper()

	t.Run("json", func(t *testing.T) {
		dir := t.TempDir()
		fn(t, repository.FileStores(repository.Paths{
			Users:     filepath.Join(dir, "users.json"),
			Products:  filepath.Join(dir, "products.json"),
			Carts:     filepath.Join(dir, "carts.json"),
			Wishlists: filepath.Join(dir, "wishlists.json"),
			Sequences: filepath.Join(dir, "sequences.json"),
		}))
	})

	t.Run("sqlite", func(t *testing.T) {
		db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("New DB: %v", err)
		}
		t.Cleanup(func() { db.Close() })
		if err := db.Migrate(context.Background()); err != nil {
			t.Fatalf("Migrate: %v", err)
		}
		fn(t, repository.SQLiteStores(db))
	})
}
