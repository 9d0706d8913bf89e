// Package kvstore is the keyed document storage port. Each collection is
// persisted as one opaque blob under its key; callers never do partial
// writes. Backends: in-memory, file directory, MySQL table, Redis, MinIO.
package kvstore

import "context"

type Store interface {
	// Get returns the blob stored under key, with ok=false when the key
	// is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
