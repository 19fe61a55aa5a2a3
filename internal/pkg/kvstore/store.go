// Package kvstore persists realm documents as JSON text in a key-value byte store.
//
// The Adapter is the only type callers talk to: it never returns errors from reads,
// reports writes as a boolean, and logs every failure. Backends implement ByteStore.
package kvstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a ByteStore when the key is absent.
	ErrNotFound = errors.New("kvstore: key not found")
	// ErrQuotaExceeded is returned when an encoded value is larger than the configured quota.
	ErrQuotaExceeded = errors.New("kvstore: quota exceeded")
	// ErrClosed is returned by backends used after Close.
	ErrClosed = errors.New("kvstore: store closed")
)

// ByteStore is a string-keyed store of opaque byte values.
// Implementations must be safe for concurrent use. Writes are last-write-wins.
type ByteStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
