package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/pkg/metrics"
)

const (
	// DefaultSessionKey names the durable record holding the current identity.
	DefaultSessionKey = "salon_user"
	// DefaultCacheTTL is how long a cached identity is trusted before the durable
	// record is read again.
	DefaultCacheTTL = 5 * time.Second
	// DefaultMaxStores and DefaultStoreIdle bound the registry of per-device stores.
	DefaultMaxStores = 10000
	DefaultStoreIdle = 30 * time.Minute
)

type sessionOptions struct {
	cacheTTL  time.Duration
	recordTTL time.Duration
	maxStores int
	storeIdle time.Duration
	now       func() time.Time
}

// SessionOption tunes a SessionStore or a SessionRegistry.
type SessionOption func(*sessionOptions)

// WithCacheTTL sets how long a cached identity is served without reading storage.
// Zero or less reads storage on every call.
func WithCacheTTL(d time.Duration) SessionOption {
	return func(o *sessionOptions) { o.cacheTTL = d }
}

// WithRecordTTL tells the store that storage expires records after d, so a cached
// identity never outlives its record. Zero means records do not expire.
func WithRecordTTL(d time.Duration) SessionOption {
	return func(o *sessionOptions) { o.recordTTL = d }
}

// WithStoreLimit bounds a SessionRegistry to max stores, each dropped after idle
// without use. Dropping a store only discards its cache.
func WithStoreLimit(max int, idle time.Duration) SessionOption {
	return func(o *sessionOptions) {
		o.maxStores = max
		o.storeIdle = idle
	}
}

// WithClock replaces time.Now for cache expiry.
func WithClock(now func() time.Time) SessionOption {
	return func(o *sessionOptions) { o.now = now }
}

func newSessionOptions(opts []SessionOption) sessionOptions {
	o := sessionOptions{
		cacheTTL:  DefaultCacheTTL,
		maxStores: DefaultMaxStores,
		storeIdle: DefaultStoreIdle,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.recordTTL > 0 && o.cacheTTL > o.recordTTL {
		o.cacheTTL = o.recordTTL
	}
	return o
}

// SessionStore holds the current identity of one device. Reads are served from an
// in-memory cache that mirrors the durable record under key until the cache lapses.
type SessionStore struct {
	storage ports.SessionStorage
	key     string
	log     zerolog.Logger
	opts    sessionOptions

	mu        sync.RWMutex
	cached    *domain.Identity
	expiresAt time.Time
}

// NewSessionStore returns a SessionStore bound to a single durable record.
func NewSessionStore(storage ports.SessionStorage, key string, log zerolog.Logger, opts ...SessionOption) *SessionStore {
	return newSessionStore(storage, key, log, newSessionOptions(opts))
}

func newSessionStore(storage ports.SessionStorage, key string, log zerolog.Logger, opts sessionOptions) *SessionStore {
	if key == "" {
		key = DefaultSessionKey
	}
	return &SessionStore{storage: storage, key: key, log: log, opts: opts}
}

// Key returns the durable record name.
func (s *SessionStore) Key() string { return s.key }

// Current returns the cached identity, falling back to the durable record once the
// cache has lapsed. An unreadable record is logged and reported as anonymous; it
// never errors.
func (s *SessionStore) Current(ctx context.Context) (domain.Identity, bool) {
	s.mu.RLock()
	if s.fresh() {
		id := *s.cached
		s.mu.RUnlock()
		return id, true
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fresh() {
		return *s.cached, true
	}
	s.cached = nil

	id, err := s.load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrRecordNotFound) {
			metrics.SessionStorageReadFailuresTotal.Inc()
			s.log.Warn().Err(err).Str("key", s.key).Msg("unreadable session record, treating visitor as anonymous")
		}
		return domain.Identity{}, false
	}
	s.cache(id)
	return id, true
}

// fresh reports whether the cache may be served. Callers hold mu.
func (s *SessionStore) fresh() bool {
	return s.cached != nil && s.opts.now().Before(s.expiresAt)
}

// cache stores id until the cache TTL lapses. Callers hold mu.
func (s *SessionStore) cache(id domain.Identity) {
	s.cached = &id
	s.expiresAt = s.opts.now().Add(s.opts.cacheTTL)
}

// IsAuthenticated reports whether an identity is current.
func (s *SessionStore) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Current(ctx)
	return ok
}

// SetCurrent persists identity and refreshes the cache. The cache is left untouched
// when the durable write fails.
func (s *SessionStore) SetCurrent(ctx context.Context, identity domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	s.cache(identity)
	return nil
}

// ClearCurrent removes the durable record and the cache entry.
func (s *SessionStore) ClearCurrent(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, s.key); err != nil && !errors.Is(err, ports.ErrRecordNotFound) {
		return fmt.Errorf("clear session: %w", err)
	}
	s.cached = nil
	s.expiresAt = time.Time{}
	return nil
}

func (s *SessionStore) load(ctx context.Context) (domain.Identity, error) {
	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ports.ErrRecordNotFound) {
			return domain.Identity{}, err
		}
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrStorageRead, err)
	}

	var id domain.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrStorageRead, err)
	}
	if err := id.Validate(); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// SessionRegistry hands out one SessionStore per device. Stores live in an expirable
// LRU so devices that stop calling, or never sign in, do not pin memory. Durable
// storage stays the source of truth, so an evicted store is rebuilt on the next call.
type SessionRegistry struct {
	storage ports.SessionStorage
	baseKey string
	log     zerolog.Logger
	opts    sessionOptions

	mu     sync.Mutex
	stores *expirable.LRU[string, *SessionStore]
}

// NewSessionRegistry returns a registry whose stores share storage and are keyed
// "<baseKey>:<deviceID>".
func NewSessionRegistry(storage ports.SessionStorage, baseKey string, log zerolog.Logger, opts ...SessionOption) *SessionRegistry {
	if baseKey == "" {
		baseKey = DefaultSessionKey
	}
	o := newSessionOptions(opts)
	return &SessionRegistry{
		storage: storage,
		baseKey: baseKey,
		log:     log,
		opts:    o,
		stores:  expirable.NewLRU[string, *SessionStore](o.maxStores, nil, o.storeIdle),
	}
}

// For returns the session store of deviceID. Each call renews the store's idle timer.
func (r *SessionRegistry) For(deviceID string) *SessionStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stores.Get(deviceID)
	if !ok {
		key := r.baseKey + ":" + deviceID
		s = newSessionStore(r.storage, key, r.log.With().Str("device_id", deviceID).Logger(), r.opts)
	}
	r.stores.Add(deviceID, s)
	return s
}

// Len returns the number of stores currently held.
func (r *SessionRegistry) Len() int {
	return r.stores.Len()
}
