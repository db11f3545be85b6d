package auth

import (
	"context"
	"errors"

	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/internal/repository"
)

// Identity is the resolved, request-scoped caller. It is rebuilt from a
// fresh account lookup on every request and never cached.
type Identity struct {
	ID    string
	Email string
	Roles []string
}

// HasRole reports whether the identity carries the given role.
func (i *Identity) HasRole(role string) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserLookup is the account-lookup capability the resolver depends on.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Resolver turns a verified token subject into a full Identity.
type Resolver struct {
	users UserLookup
}

// NewResolver constructs a resolver over the given lookup.
func NewResolver(users UserLookup) *Resolver {
	return &Resolver{users: users}
}

// Resolve looks up the account behind the subject claim. A missing
// account yields (nil, nil): deleted-since-issuance collapses to no
// identity rather than an error. Roles come from the account's current
// state, not the token snapshot.
func (r *Resolver) Resolve(ctx context.Context, subject string) (*Identity, error) {
	user, err := r.users.GetByID(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Identity{ID: user.ID, Email: user.Email, Roles: user.Roles}, nil
}
