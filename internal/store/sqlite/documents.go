package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/storefront/internal/store"
)

// Documents implements store.Store[T] on one row of the collections table.
// Replace is a single upsert statement, so readers never observe a partial
// collection.
type Documents[T any] struct {
	db   *sql.DB
	name string
}

// NewDocuments returns the document store for the named collection.
func NewDocuments[T any](db *DB, name string) *Documents[T] {
	return &Documents[T]{db: db.SqlDB, name: name}
}

func (d *Documents[T]) Load(ctx context.Context) ([]T, error) {
	var body string
	err := d.db.QueryRowContext(ctx,
		"SELECT body FROM collections WHERE name = ?", d.name,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		if err := d.ensure(ctx); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query collection %s: %w", store.ErrIO, d.name, err)
	}

	all, err := store.Decode[T]([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", d.name, err)
	}
	return all, nil
}

func (d *Documents[T]) Replace(ctx context.Context, all []T) error {
	body, err := store.Encode(all, false)
	if err != nil {
		return fmt.Errorf("%w: encode collection %s: %w", store.ErrIO, d.name, err)
	}

	_, err = d.db.ExecContext(ctx,
		`INSERT INTO collections (name, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		d.name, string(body), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: replace collection %s: %w", store.ErrIO, d.name, err)
	}
	return nil
}

func (d *Documents[T]) ensure(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO collections (name, body, updated_at) VALUES (?, '[]', ?)
		 ON CONFLICT(name) DO NOTHING`,
		d.name, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: create collection %s: %w", store.ErrIO, d.name, err)
	}
	return nil
}
