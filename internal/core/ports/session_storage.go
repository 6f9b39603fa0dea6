package ports

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned by SessionStorage.Get when no record exists under the key.
var ErrRecordNotFound = errors.New("session record not found")

// SessionStorage is the durable client-side store holding one serialized record per key.
// Set and Delete are each a single atomic write from the backend's perspective.
type SessionStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
