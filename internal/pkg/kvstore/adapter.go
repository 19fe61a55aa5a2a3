package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultQuotaBytes mirrors the per-origin quota browsers give local storage.
const DefaultQuotaBytes = 5 * 1024 * 1024

// Adapter wraps a ByteStore with JSON encoding. Load never fails loudly and Save/Clear
// report success as a boolean; the error behind the last failed read or write is kept
// for callers that want to surface it.
type Adapter struct {
	store      ByteStore
	quotaBytes int
	logger     zerolog.Logger

	mu      sync.Mutex
	lastErr error
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithQuota caps the encoded size of a single value. Zero disables the check.
func WithQuota(bytes int) Option {
	return func(a *Adapter) {
		a.quotaBytes = bytes
	}
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// NewAdapter creates an Adapter over store.
func NewAdapter(store ByteStore, opts ...Option) *Adapter {
	a := &Adapter{
		store:      store,
		quotaBytes: DefaultQuotaBytes,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load returns the raw JSON text stored under key, or nil when the key is absent or
// the backend failed. A backend failure is kept for LastError so callers can tell it
// apart from an absent key. The text is returned as stored; it is not validated here.
func (a *Adapter) Load(ctx context.Context, key string) json.RawMessage {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.setLastErr(nil)
		} else {
			a.fail(key, fmt.Errorf("read %s: %w", key, err), "Failed to read content document")
		}
		return nil
	}
	a.setLastErr(nil)
	if len(raw) == 0 {
		return nil
	}
	return json.RawMessage(raw)
}

// Save encodes value as JSON and writes it under key.
func (a *Adapter) Save(ctx context.Context, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		a.fail(key, fmt.Errorf("encode %s: %w", key, err), "Failed to encode content document")
		return false
	}

	if a.quotaBytes > 0 && len(raw) > a.quotaBytes {
		a.fail(key, fmt.Errorf("%w: %d bytes over a %d byte quota", ErrQuotaExceeded, len(raw), a.quotaBytes), "Content document exceeds storage quota")
		return false
	}

	if err := a.store.Set(ctx, key, raw); err != nil {
		a.fail(key, fmt.Errorf("write %s: %w", key, err), "Failed to write content document")
		return false
	}

	a.setLastErr(nil)
	return true
}

// Clear removes key. Removing an absent key succeeds.
func (a *Adapter) Clear(ctx context.Context, key string) bool {
	if err := a.store.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		a.fail(key, fmt.Errorf("delete %s: %w", key, err), "Failed to clear content document")
		return false
	}
	a.setLastErr(nil)
	return true
}

// Keys lists stored keys with the given prefix. Failures yield an empty list.
func (a *Adapter) Keys(ctx context.Context, prefix string) []string {
	keys, err := a.store.Keys(ctx, prefix)
	if err != nil {
		a.logger.Error().Err(err).Str("prefix", prefix).Msg("Failed to list content documents")
		return []string{}
	}
	return keys
}

// LastError returns the error of the most recent Load, Save or Clear, or nil when that
// call succeeded. An absent key on Load counts as success.
func (a *Adapter) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Close releases the underlying store.
func (a *Adapter) Close() error {
	return a.store.Close()
}

func (a *Adapter) fail(key string, err error, msg string) {
	a.logger.Error().Err(err).Str("key", key).Msg(msg)
	a.setLastErr(err)
}

func (a *Adapter) setLastErr(err error) {
	a.mu.Lock()
	a.lastErr = err
	a.mu.Unlock()
}
