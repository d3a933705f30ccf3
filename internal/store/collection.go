package store

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Collection wraps a Store with serialised read-modify-write cycles. All
// repositories of one entity kind must share a single Collection, otherwise
// their updates can interleave and lose writes.
type Collection[T any] struct {
	store Store[T]
	sem   *semaphore.Weighted
}

// NewCollection guards s.
func NewCollection[T any](s Store[T]) *Collection[T] {
	return &Collection[T]{store: s, sem: semaphore.NewWeighted(1)}
}

// Load reads the collection without taking the write lock.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	return c.store.Load(ctx)
}

// Update loads the collection, passes it to fn and replaces the container
// with whatever fn returns. Only one Update per Collection runs at a time.
// Waiting for the lock honours ctx; once the lock is held the cycle runs to
// completion regardless of cancellation. If fn fails nothing is written.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire collection lock: %w", err)
	}
	defer c.sem.Release(1)

	ctx = context.WithoutCancel(ctx)

	all, err := c.store.Load(ctx)
	if err != nil {
		return err
	}

	next, err := fn(all)
	if err != nil {
		return err
	}

	return c.store.Replace(ctx, next)
}
