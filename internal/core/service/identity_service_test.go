package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/infrastructure/db/memory"
)

type recordedNotifications struct {
	items []domain.Notification
}

func (r *recordedNotifications) Notify(n domain.Notification) { r.items = append(r.items, n) }

func (r *recordedNotifications) last() domain.Notification {
	if len(r.items) == 0 {
		return domain.Notification{}
	}
	return r.items[len(r.items)-1]
}

func newIdentityFixture(t *testing.T) (*IdentityService, *SessionStore, *recordedNotifications) {
	t.Helper()
	store := NewSessionStore(memory.NewSessionStorage(), "k", zerolog.Nop())
	notes := &recordedNotifications{}
	return NewIdentityService(store, NewMockProvider(0), notes, zerolog.Nop()), store, notes
}

func TestIdentityService_LoginSalonHeuristic(t *testing.T) {
	ctx := context.Background()
	svc, store, notes := newIdentityFixture(t)

	id, err := svc.Login(ctx, "owner@salon.com", "x")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSalon, id.Role)
	assert.Equal(t, "owner", id.Name)
	assert.NotEmpty(t, id.ID)

	current, ok := store.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, id, current)
	assert.Equal(t, domain.NotifySuccess, notes.last().Kind)
}

func TestIdentityService_LoginClient(t *testing.T) {
	svc, _, _ := newIdentityFixture(t)

	id, err := svc.Login(context.Background(), "jane@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, id.Role)
	assert.Equal(t, "jane", id.Name)
}

func TestIdentityService_LoginEmptyPasswordLeavesSession(t *testing.T) {
	ctx := context.Background()
	svc, store, notes := newIdentityFixture(t)
	require.NoError(t, store.SetCurrent(ctx, jane))

	_, err := svc.Login(ctx, "a@b.com", "")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	current, ok := store.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, jane, current)
	assert.Equal(t, domain.NotifyError, notes.last().Kind)
}

func TestIdentityService_RegisterUsesSuppliedRole(t *testing.T) {
	svc, store, notes := newIdentityFixture(t)

	id, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Jane", Email: "jane@example.com", Password: "pw", Role: domain.RoleSalon,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSalon, id.Role)
	assert.Equal(t, "Jane", id.Name)
	assert.True(t, store.IsAuthenticated(context.Background()))
	assert.Equal(t, "Account created", notes.last().Title)
}

func TestIdentityService_RegisterMissingFields(t *testing.T) {
	svc, store, _ := newIdentityFixture(t)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@b.com", Password: "pw", Role: domain.RoleClient})
	require.ErrorIs(t, err, domain.ErrInvalidRegistration)
	assert.False(t, store.IsAuthenticated(context.Background()))
}

func TestIdentityService_DemoLogin(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleClient, domain.RoleSalon} {
		t.Run(string(role), func(t *testing.T) {
			svc, store, notes := newIdentityFixture(t)

			id, err := svc.DemoLogin(context.Background(), role)
			require.NoError(t, err)
			assert.Equal(t, role, id.Role)
			assert.True(t, strings.HasPrefix(id.ID, "demo-"+string(role)+"-"))
			assert.Len(t, id.ID, len("demo-"+string(role)+"-")+8)
			assert.NotEmpty(t, id.Avatar)
			assert.True(t, store.IsAuthenticated(context.Background()))
			assert.Equal(t, domain.NotifyInfo, notes.last().Kind)
		})
	}
}

func TestIdentityService_DemoLoginUnknownRole(t *testing.T) {
	svc, _, _ := newIdentityFixture(t)

	_, err := svc.DemoLogin(context.Background(), domain.Role("admin"))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestIdentityService_LogoutThenGuardRedirects(t *testing.T) {
	ctx := context.Background()
	svc, store, notes := newIdentityFixture(t)

	_, err := svc.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, ok := store.Current(ctx)
	assert.False(t, ok)
	assert.Equal(t, "Signed out", notes.last().Title)

	decision := NewAccessGuard(store).Check(ctx, "/dashboard")
	assert.False(t, decision.Allowed)
	assert.Equal(t, "/login", decision.RedirectTo)
}

func TestIdentityService_WriteFailureIsReported(t *testing.T) {
	storage := newStubStorage()
	storage.setErr = errors.New("quota exceeded")
	store := NewSessionStore(storage, "k", zerolog.Nop())
	notes := &recordedNotifications{}
	svc := NewIdentityService(store, NewMockProvider(0), notes, zerolog.Nop())

	_, err := svc.DemoLogin(context.Background(), domain.RoleClient)
	require.Error(t, err)
	assert.False(t, store.IsAuthenticated(context.Background()))
	assert.Equal(t, domain.NotifyError, notes.last().Kind)
}

func TestIdentityService_NilNotifier(t *testing.T) {
	store := NewSessionStore(memory.NewSessionStorage(), "k", zerolog.Nop())
	svc := NewIdentityService(store, NewMockProvider(0), nil, zerolog.Nop())

	_, err := svc.Login(context.Background(), "jane@example.com", "pw")
	assert.NoError(t, err)
}
