package model

import "context"

// KeyValueStore is the minimal keyed persistence contract backing leads.
// Only single-key atomicity is assumed; there are no cross-key transactions,
// batches, or in-place updates. List returns keys in the store's own
// enumeration order, which is not guaranteed to be chronological.
type KeyValueStore interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string, limit int) ([]string, error)
}
