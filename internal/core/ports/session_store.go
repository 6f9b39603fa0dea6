package ports

import (
	"context"

	"github.com/glamslot/booking/internal/core/domain"
)

// SessionReader is the read side of the session store consulted by the access guard
// and the navigation chrome on every navigation.
type SessionReader interface {
	Current(ctx context.Context) (domain.Identity, bool)
	IsAuthenticated(ctx context.Context) bool
}

// SessionStore is the single source of truth for who is logged in on a device.
type SessionStore interface {
	SessionReader
	SetCurrent(ctx context.Context, identity domain.Identity) error
	ClearCurrent(ctx context.Context) error
}
