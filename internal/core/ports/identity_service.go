package ports

import (
	"context"

	"github.com/glamslot/booking/internal/core/domain"
)

// IdentityService exposes the state transitions of a device session.
type IdentityService interface {
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Register(ctx context.Context, in RegisterInput) (domain.Identity, error)
	DemoLogin(ctx context.Context, role domain.Role) (domain.Identity, error)
	Logout(ctx context.Context) error
}
