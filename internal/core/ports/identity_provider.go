package ports

import (
	"context"

	"github.com/glamslot/booking/internal/core/domain"
)

// RegisterInput carries the fields of a sign-up form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// IdentityProvider is the backend that authenticates credentials and creates accounts.
// It never touches the session store.
type IdentityProvider interface {
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Register(ctx context.Context, in RegisterInput) (domain.Identity, error)
}
