package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/core/service"
)

func newTestStorage(t *testing.T, ttl time.Duration) (*SessionStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStorage(client, ttl), mr
}

func TestSessionStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStorage(t, 0)

	require.NoError(t, s.Set(ctx, "salon_user:d1", []byte(`{"id":"u1"}`)))
	got, err := s.Get(ctx, "salon_user:d1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u1"}`, string(got))
	assert.Equal(t, time.Duration(0), mr.TTL("salon_user:d1"))

	require.NoError(t, s.Delete(ctx, "salon_user:d1"))
	_, err = s.Get(ctx, "salon_user:d1")
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
}

func TestSessionStorage_MissingKey(t *testing.T) {
	s, _ := newTestStorage(t, 0)

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
	assert.NoError(t, s.Delete(context.Background(), "nope"))
}

func TestSessionStorage_TTL(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStorage(t, time.Hour)

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	assert.Equal(t, time.Hour, mr.TTL("k"))

	mr.FastForward(2 * time.Hour)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
}

func TestSessionStorage_ServerDown(t *testing.T) {
	s, mr := newTestStorage(t, 0)
	mr.Close()

	_, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrRecordNotFound)
}

func TestSessionStore_ExpiredRecordSignsOut(t *testing.T) {
	ctx := context.Background()
	storage, mr := newTestStorage(t, time.Minute)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store := service.NewSessionStore(storage, "salon_user:d1", zerolog.Nop(),
		service.WithCacheTTL(time.Hour),
		service.WithRecordTTL(time.Minute),
		service.WithClock(clock),
	)
	owner := domain.Identity{ID: "u1", Name: "owner", Email: "owner@salon.com", Role: domain.RoleSalon}
	require.NoError(t, store.SetCurrent(ctx, owner))
	require.True(t, store.IsAuthenticated(ctx))

	mr.FastForward(2 * time.Minute)
	now = now.Add(2 * time.Minute)

	assert.False(t, mr.Exists("salon_user:d1"))
	_, ok := store.Current(ctx)
	assert.False(t, ok)
}

func TestSessionStore_SignOutOnOtherInstance(t *testing.T) {
	ctx := context.Background()
	storage, _ := newTestStorage(t, 0)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	a := service.NewSessionStore(storage, "salon_user:d1", zerolog.Nop(), service.WithCacheTTL(5*time.Second), service.WithClock(clock))
	b := service.NewSessionStore(storage, "salon_user:d1", zerolog.Nop(), service.WithCacheTTL(5*time.Second), service.WithClock(clock))

	owner := domain.Identity{ID: "u1", Name: "owner", Email: "owner@salon.com", Role: domain.RoleSalon}
	require.NoError(t, a.SetCurrent(ctx, owner))
	require.NoError(t, b.ClearCurrent(ctx))

	now = now.Add(6 * time.Second)
	assert.False(t, a.IsAuthenticated(ctx))
}
