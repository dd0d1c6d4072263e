package store

import "context"

// Entry is a single key/value pair in the flat namespace.
type Entry struct {
	Key   string
	Value []byte
}

// Batch groups writes that must land together. Puts are upserts.
type Batch struct {
	Puts    []Entry
	Deletes []string
}

// Put appends an upsert to the batch.
func (b *Batch) Put(key string, value []byte) {
	b.Puts = append(b.Puts, Entry{Key: key, Value: value})
}

// Delete appends a removal to the batch.
func (b *Batch) Delete(keys ...string) {
	b.Deletes = append(b.Deletes, keys...)
}

// Empty reports whether the batch carries no writes.
func (b Batch) Empty() bool {
	return len(b.Puts) == 0 && len(b.Deletes) == 0
}

// KV is a flat key/value namespace shared by every component that
// persists local state.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Apply writes the batch atomically.
	Apply(ctx context.Context, b Batch) error

	// Keys lists every key currently stored, in lexical order.
	Keys(ctx context.Context) ([]string, error)
}
