package domain

import "context"

// Database defines lifecycle operations for a storage backend that needs
// schema setup before the record stores can use it.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
