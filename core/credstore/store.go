package credstore

import "context"

// Store is a small string key-value store holding credential material.
// Each key is single-writer from the application's perspective, but
// implementations must still be safe for concurrent use.
type Store interface {
	// Get returns the value for key, or ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
