package service

import (
	"strings"

	"github.com/msomdec/storefront/internal/domain"
)

// AccessPolicy decides which identities may manage the catalog.
type AccessPolicy struct {
	admins map[string]struct{}
}

// NewAccessPolicy grants admin rights to the given emails, compared
// case-insensitively.
func NewAccessPolicy(adminEmails []string) *AccessPolicy {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &AccessPolicy{admins: admins}
}

func (p *AccessPolicy) IsAdmin(id domain.Identity) bool {
	_, ok := p.admins[strings.ToLower(id.Email)]
	return ok
}

// RequireAdmin returns domain.ErrForbidden unless id is an admin.
func (p *AccessPolicy) RequireAdmin(id domain.Identity) error {
	if !p.IsAdmin(id) {
		return domain.ErrForbidden
	}
	return nil
}
