// Package memory provides in-process implementations of the storage ports. They back
// the development profile and the tests.
package memory

import (
	"context"
	"sync"

	"github.com/glamslot/booking/internal/core/ports"
)

// SessionStorage keeps session records in a map.
type SessionStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{records: make(map[string][]byte)}
}

func (s *SessionStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		return nil, ports.ErrRecordNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *SessionStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = append([]byte(nil), value...)
	return nil
}

func (s *SessionStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}
