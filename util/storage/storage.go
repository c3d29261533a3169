package storage

import "context"

// Storage is the session scoped key/value store backing the auth session.
// Implementations must be safe for concurrent use.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
