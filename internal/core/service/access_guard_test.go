package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glamslot/booking/internal/core/domain"
)

type stubReader struct {
	identity *domain.Identity
}

func (s stubReader) Current(context.Context) (domain.Identity, bool) {
	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

func (s stubReader) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Current(ctx)
	return ok
}

func TestAccessGuard_Anonymous(t *testing.T) {
	guard := NewAccessGuard(stubReader{})
	ctx := context.Background()

	for _, path := range ProtectedViews {
		d := guard.Check(ctx, path)
		assert.False(t, d.Allowed, path)
		assert.Equal(t, domain.LoginPath, d.RedirectTo, path)
	}

	for _, path := range []string{"/", "/login", "/register", "/salons/42", "/bookings"} {
		assert.Equal(t, domain.GuardDecision{Allowed: true}, guard.Check(ctx, path), path)
	}
}

func TestAccessGuard_SubPathsAreProtected(t *testing.T) {
	guard := NewAccessGuard(stubReader{})
	d := guard.Check(context.Background(), "/salon/staff/7")
	assert.False(t, d.Allowed)
}

func TestAccessGuard_IgnoresRole(t *testing.T) {
	client := domain.Identity{ID: "u1", Role: domain.RoleClient}
	guard := NewAccessGuard(stubReader{identity: &client})

	for _, path := range []string{"/salon", "/salon/dashboard", "/dashboard", "/payment-methods"} {
		assert.True(t, guard.Check(context.Background(), path).Allowed, path)
	}
}

func TestIsProtected(t *testing.T) {
	assert.True(t, IsProtected("/book"))
	assert.True(t, IsProtected("/book/confirm"))
	assert.False(t, IsProtected("/booking"))
	assert.False(t, IsProtected("/salons"))
	assert.False(t, IsProtected(""))
}
