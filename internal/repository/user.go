package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/store"
)

// UserRepository implements domain.UserRepository on a record store.
type UserRepository struct {
	users *store.Collection[domain.User]
}

// NewUserRepository creates a UserRepository owning s.
func NewUserRepository(s store.Store[domain.User]) *UserRepository {
	return &UserRepository{users: store.NewCollection(s)}
}

// Create appends user unless its email is taken. Emails compare
// case-insensitively.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.users.Update(ctx, func(all []domain.User) ([]domain.User, error) {
		for _, u := range all {
			if strings.EqualFold(u.Email, user.Email) {
				return nil, domain.ErrDuplicateEmail
			}
		}
		if user.CreatedAt == 0 {
			user.CreatedAt = domain.Now()
		}
		return append(all, *user), nil
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	all, err := r.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for i := range all {
		if strings.EqualFold(all[i].Email, email) {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
