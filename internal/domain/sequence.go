package domain

import "context"

// Sequence is a named monotonic counter persisted independently of any
// entity collection.
type Sequence struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// SequenceRepository hands out ids that are never reused.
type SequenceRepository interface {
	// Next returns max(current, floor)+1 for the named sequence and persists it.
	Next(ctx context.Context, name string, floor int64) (int64, error)
}
