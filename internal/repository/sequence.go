package repository

import (
	"context"
	"fmt"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/store"
)

// SequenceRepository implements domain.SequenceRepository.
type SequenceRepository struct {
	sequences *store.Collection[domain.Sequence]
}

// NewSequenceRepository creates a SequenceRepository owning s.
func NewSequenceRepository(s store.Store[domain.Sequence]) *SequenceRepository {
	return &SequenceRepository{sequences: store.NewCollection(s)}
}

func (r *SequenceRepository) Next(ctx context.Context, name string, floor int64) (int64, error) {
	var next int64
	err := r.sequences.Update(ctx, func(all []domain.Sequence) ([]domain.Sequence, error) {
		for i := range all {
			if all[i].Name == name {
				next = max(all[i].Value, floor) + 1
				all[i].Value = next
				return all, nil
			}
		}
		next = floor + 1
		return append(all, domain.Sequence{Name: name, Value: next}), nil
	})
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return next, nil
}
