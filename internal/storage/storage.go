// Package storage is the client's durable local key/value storage: the place
// the session credential, the serialized profile and the UI language survive
// restarts.
package storage

import (
	"context"
	"errors"
)

// Well-known keys.
const (
	KeyToken    = "token"
	KeyUser     = "user"
	KeyLanguage = "language"
)

var (
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
	ErrEmptyKey          = errors.New("storage key is empty")
)

// Storage is a durable string key/value store.
type Storage interface {
	// Get returns the value and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
	Close() error
}
