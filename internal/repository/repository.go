// Package repository implements the typed entity repositories on top of the
// record stores. Each repository owns one store.Collection and routes every
// mutation through Collection.Update, so concurrent requests against the same
// container are applied one after another instead of overwriting each other.
package repository

import (
	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/store"
	"github.com/msomdec/storefront/internal/store/sqlite"
)

// Collection names shared by both backends.
const (
	UsersCollection     = "users"
	ProductsCollection  = "products"
	CartsCollection     = "carts"
	WishlistsCollection = "wishlists"
	SequencesCollection = "sequences"
)

// Stores is the set of record stores behind the repositories, one container
// per entity kind.
type Stores struct {
	Users     store.Store[domain.User]
	Products  store.Store[domain.Product]
	Carts     store.Store[domain.Cart]
	Wishlists store.Store[domain.Wishlist]
	Sequences store.Store[domain.Sequence]
}

// Paths locates the JSON file of every collection.
type Paths struct {
	Users     string
	Products  string
	Carts     string
	Wishlists string
	Sequences string
}

// FileStores returns JSON file stores at the given paths.
func FileStores(p Paths) Stores {
	return Stores{
		Users:     store.NewFileStore[domain.User](p.Users),
		Products:  store.NewFileStore[domain.Product](p.Products),
		Carts:     store.NewFileStore[domain.Cart](p.Carts),
		Wishlists: store.NewFileStore[domain.Wishlist](p.Wishlists),
		Sequences: store.NewFileStore[domain.Sequence](p.Sequences),
	}
}

// SQLiteStores returns document stores that keep each collection in one row.
func SQLiteStores(db *sqlite.DB) Stores {
	return Stores{
		Users:     sqlite.NewDocuments[domain.User](db, UsersCollection),
		Products:  sqlite.NewDocuments[domain.Product](db, ProductsCollection),
		Carts:     sqlite.NewDocuments[domain.Cart](db, CartsCollection),
		Wishlists: sqlite.NewDocuments[domain.Wishlist](db, WishlistsCollection),
		Sequences: sqlite.NewDocuments[domain.Sequence](db, SequencesCollection),
	}
}

// Repositories groups the repository of every entity kind.
type Repositories struct {
	Users     *UserRepository
	Products  *ProductRepository
	Carts     *CartRepository
	Wishlists *WishlistRepository
	Sequences *SequenceRepository
}

// New builds the repositories. Call it once per set of stores: the
// serialisation guarantee only holds between repositories sharing a
// Collection.
func New(s Stores) *Repositories {
	seq := NewSequenceRepository(s.Sequences)
	return &Repositories{
		Users:     NewUserRepository(s.Users),
		Products:  NewProductRepository(s.Products, seq),
		Carts:     NewCartRepository(s.Carts),
		Wishlists: NewWishlistRepository(s.Wishlists),
		Sequences: seq,
	}
}
