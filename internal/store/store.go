// Package store persists homogeneous record collections as whole units.
//
// A Store loads and replaces an entire collection at once and performs no
// mutual exclusion of its own: two callers that each Load, modify their copy
// and Replace will race, and the last Replace to complete silently discards
// the other caller's change (a lost update). Callers that mutate must go
// through Collection.Update, which serialises read-modify-write cycles for a
// single container.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrIO marks failures of the backing medium: unreadable or unwritable
// containers and malformed persisted data.
var ErrIO = errors.New("record store I/O")

// Store is one persistent container holding an ordered collection of T.
type Store[T any] interface {
	// Load returns the full collection in persisted order. A missing
	// container is created empty first.
	Load(ctx context.Context) ([]T, error)
	// Replace overwrites the whole collection. A failed Replace leaves the
	// previously persisted collection intact.
	Replace(ctx context.Context, all []T) error
}

// Encode renders a collection as a JSON array. A nil slice encodes as [].
func Encode[T any](all []T, indent bool) ([]byte, error) {
	if all == nil {
		all = []T{}
	}
	if !indent {
		return json.Marshal(all)
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a JSON array. Empty input and a literal null decode as an
// empty, non-nil collection.
func Decode[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []T{}, nil
	}
	var all []T
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: decode collection: %w", ErrIO, err)
	}
	if all == nil {
		all = []T{}
	}
	return all, nil
}
