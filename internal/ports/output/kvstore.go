package output

import "context"

// KVStore persists serialized collections under fixed keys.
type KVStore interface {
	// Get returns ok=false when the key was never written.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
