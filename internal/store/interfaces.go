package store

import "context"

// KeyValueStore is string-keyed durable storage.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
type KeyValueStore interface {
	// Get returns the value for key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// Close releases the underlying resources.
	Close() error
}
