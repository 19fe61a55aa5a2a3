// Package pagedata holds the editable state of one content realm: it loads the realm's
// document from a store, merges it onto the realm defaults, and re-persists the whole
// document on every change.
package pagedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
)

var (
	// ErrUnknownSection is returned for a section name the realm does not define.
	ErrUnknownSection = errors.New("pagedata: unknown section")
	// ErrInvalidSection is returned when a section value does not fit the realm's shape.
	ErrInvalidSection = errors.New("pagedata: section value does not fit the page shape")
	// ErrPersistFailed is recorded when the store rejects a write without saying why.
	ErrPersistFailed = errors.New("pagedata: store rejected the write")
)

// State is the load lifecycle of a Hook.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// LoadStatus records what the load attempt found.
type LoadStatus string

const (
	LoadPending LoadStatus = "pending"
	// LoadSeeded means nothing was stored and the defaults were written.
	LoadSeeded LoadStatus = "seeded"
	// LoadMerged means a stored document was merged onto the defaults.
	LoadMerged LoadStatus = "merged"
	// LoadCorrupt means the stored text could not be used or could not be read. Defaults
	// are served and the stored text is left untouched until the next successful write.
	LoadCorrupt LoadStatus = "corrupt"
)

// Store is the persistence contract a Hook needs. kvstore.Adapter satisfies it.
type Store interface {
	Load(ctx context.Context, key string) json.RawMessage
	Save(ctx context.Context, key string, value any) bool
}

type errorReporter interface {
	LastError() error
}

// EventKind names a change published to subscribers.
type EventKind string

const (
	EventSectionUpdated EventKind = "section_updated"
	EventSaved          EventKind = "saved"
	EventReset          EventKind = "reset"
	EventImported       EventKind = "imported"
)

// Event describes one change to a realm's document.
type Event struct {
	Realm     string    `json:"realm"`
	Kind      EventKind `json:"kind"`
	Section   string    `json:"section,omitempty"`
	Persisted bool      `json:"persisted"`
	At        time.Time `json:"at"`
}

// Page is the realm-agnostic view of a Hook used by services and handlers.
type Page interface {
	Name() string
	Info() Info
	Load(ctx context.Context) LoadStatus
	State() State
	IsLoaded() bool
	Status() LoadStatus
	Document() (json.RawMessage, error)
	Section(key string) (json.RawMessage, error)
	UpdateSection(ctx context.Context, key string, value any) (bool, error)
	UpdateSections(ctx context.Context, values map[string]any) (bool, error)
	SaveData(ctx context.Context) bool
	ResetToDefault(ctx context.Context, c confirm.Confirmer) (reset bool, persisted bool)
	Import(ctx context.Context, raw json.RawMessage) (bool, error)
	EditMode() bool
	SetEditMode(on bool)
	PersistError() error
	Subscribe(fn func(Event)) (unsubscribe func())
}

// Option configures a Hook.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	now    func() time.Time
}

// WithLogger sets the logger for load and persistence failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Hook is the editable state of one realm.
type Hook[T any] struct {
	realm  Realm[T]
	store  Store
	logger zerolog.Logger
	now    func() time.Time

	mu         sync.RWMutex
	state      State
	status     LoadStatus
	data       T
	editMode   bool
	persistErr error

	subsMu  sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

var _ Page = (*Hook[struct{}])(nil)

// New creates an unloaded Hook serving the realm defaults.
func New[T any](realm Realm[T], store Store, opts ...Option) *Hook[T] {
	o := options{logger: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Hook[T]{
		realm:  realm,
		store:  store,
		logger: o.logger.With().Str("realm", realm.Name).Logger(),
		now:    o.now,
		status: LoadPending,
		data:   realm.Defaults(),
		subs:   make(map[int]func(Event)),
	}
}

func (h *Hook[T]) Name() string { return h.realm.Name }

func (h *Hook[T]) Info() Info { return h.realm.Info() }

// Load reads and merges the stored document. Only the first call does any work; later
// calls return the original outcome.
func (h *Hook[T]) Load(ctx context.Context) LoadStatus {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != StateUnloaded {
		return h.status
	}
	h.state = StateLoading

	raw := h.store.Load(ctx, h.realm.StorageKey)
	switch {
	case raw == nil && h.readFailed():
		h.logger.Error().Err(h.store.(errorReporter).LastError()).Msg("Failed to read page data, serving defaults")
		h.status = LoadCorrupt
	case raw == nil:
		h.status = LoadSeeded
		if !h.persistLocked(ctx) {
			h.logger.Warn().Err(h.persistErr).Msg("Failed to seed page data, serving defaults")
		}
	default:
		data, err := h.decode(raw)
		if err != nil {
			h.logger.Error().Err(err).Msg("Stored page data is unusable, serving defaults")
			h.status = LoadCorrupt
			break
		}
		h.data = data
		h.status = LoadMerged
	}

	h.state = StateLoaded
	return h.status
}

func (h *Hook[T]) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

func (h *Hook[T]) IsLoaded() bool {
	return h.State() == StateLoaded
}

func (h *Hook[T]) Status() LoadStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Data returns a copy of the current document.
func (h *Hook[T]) Data() T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out, err := clone(h.data)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to copy page data")
		return h.data
	}
	return out
}

// Document returns the current document as JSON.
func (h *Hook[T]) Document() (json.RawMessage, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return json.Marshal(h.data)
}

// Section returns one top-level member of the current document.
func (h *Hook[T]) Section(key string) (json.RawMessage, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	doc, err := h.objectLocked()
	if err != nil {
		return nil, err
	}
	value, ok := doc.get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}
	return value, nil
}

// UpdateSection replaces one section with value and persists the whole document.
// The in-memory document keeps the update even when persisting fails; the returned
// bool reports whether the write succeeded.
func (h *Hook[T]) UpdateSection(ctx context.Context, key string, value any) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidSection, err)
	}

	h.mu.Lock()
	doc, err := h.objectLocked()
	if err != nil {
		h.mu.Unlock()
		return false, err
	}
	if _, ok := doc.get(key); !ok {
		h.mu.Unlock()
		return false, fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}

	next, err := h.replaceLocked(doc.set(key, raw))
	if err != nil {
		h.mu.Unlock()
		return false, fmt.Errorf("%w: %s: %v", ErrInvalidSection, key, err)
	}
	h.data = next
	persisted := h.persistLocked(ctx)
	h.mu.Unlock()

	h.publish(Event{Kind: EventSectionUpdated, Section: key, Persisted: persisted})
	return persisted, nil
}

// UpdateSections replaces several sections in one write. Either every value fits and
// all are applied, or nothing changes.
func (h *Hook[T]) UpdateSections(ctx context.Context, values map[string]any) (bool, error) {
	encoded := make(map[string]json.RawMessage, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return false, fmt.Errorf("%w: %s: %v", ErrInvalidSection, key, err)
		}
		encoded[key] = raw
	}

	h.mu.Lock()
	doc, err := h.objectLocked()
	if err != nil {
		h.mu.Unlock()
		return false, err
	}
	keys := make([]string, 0, len(encoded))
	for _, key := range doc.keys() {
		if raw, ok := encoded[key]; ok {
			doc = doc.set(key, raw)
			keys = append(keys, key)
		}
	}
	if len(keys) != len(encoded) {
		h.mu.Unlock()
		return false, fmt.Errorf("%w: %s", ErrUnknownSection, unknownKeys(doc, encoded))
	}

	next, err := h.replaceLocked(doc)
	if err != nil {
		h.mu.Unlock()
		return false, fmt.Errorf("%w: %v", ErrInvalidSection, err)
	}
	h.data = next
	persisted := h.persistLocked(ctx)
	h.mu.Unlock()

	for _, key := range keys {
		h.publish(Event{Kind: EventSectionUpdated, Section: key, Persisted: persisted})
	}
	return persisted, nil
}

// SaveData writes the current document again.
func (h *Hook[T]) SaveData(ctx context.Context) bool {
	h.mu.Lock()
	persisted := h.persistLocked(ctx)
	h.mu.Unlock()

	h.publish(Event{Kind: EventSaved, Persisted: persisted})
	return persisted
}

// ResetToDefault overwrites memory and storage with the realm defaults once c agrees.
func (h *Hook[T]) ResetToDefault(ctx context.Context, c confirm.Confirmer) (reset bool, persisted bool) {
	if c == nil || !c.Confirm(ctx, fmt.Sprintf("Reset the %s page to its default content?", h.realm.Name)) {
		return false, false
	}

	h.mu.Lock()
	h.data = h.realm.Defaults()
	persisted = h.persistLocked(ctx)
	h.mu.Unlock()

	h.publish(Event{Kind: EventReset, Persisted: persisted})
	return true, persisted
}

// Import merges raw onto the defaults the same way Load does, replaces the current
// document with the result and persists it.
func (h *Hook[T]) Import(ctx context.Context, raw json.RawMessage) (bool, error) {
	data, err := h.decode(raw)
	if err != nil {
		return false, err
	}

	h.mu.Lock()
	h.data = data
	if h.state == StateUnloaded {
		h.state, h.status = StateLoaded, LoadMerged
	}
	persisted := h.persistLocked(ctx)
	h.mu.Unlock()

	h.publish(Event{Kind: EventImported, Persisted: persisted})
	return persisted, nil
}

func (h *Hook[T]) EditMode() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.editMode
}

func (h *Hook[T]) SetEditMode(on bool) {
	h.mu.Lock()
	h.editMode = on
	h.mu.Unlock()
}

// PersistError returns why the most recent write failed, or nil if it succeeded.
func (h *Hook[T]) PersistError() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.persistErr
}

// Subscribe registers fn for change events. fn runs synchronously after the change and
// must not call back into the Hook's mutating methods.
func (h *Hook[T]) Subscribe(fn func(Event)) func() {
	h.subsMu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	h.subsMu.Unlock()

	return func() {
		h.subsMu.Lock()
		delete(h.subs, id)
		h.subsMu.Unlock()
	}
}

func (h *Hook[T]) publish(ev Event) {
	ev.Realm = h.realm.Name
	ev.At = h.now()

	h.subsMu.Lock()
	fns := make([]func(Event), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.subsMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (h *Hook[T]) persistLocked(ctx context.Context) bool {
	if h.store.Save(ctx, h.realm.StorageKey, h.data) {
		h.persistErr = nil
		return true
	}

	h.persistErr = ErrPersistFailed
	if reporter, ok := h.store.(errorReporter); ok && reporter.LastError() != nil {
		h.persistErr = reporter.LastError()
	}
	h.logger.Warn().Err(h.persistErr).Msg("Page data was not persisted")
	return false
}

// readFailed reports whether the store said the last Load hit a backend error rather
// than an absent key.
func (h *Hook[T]) readFailed() bool {
	reporter, ok := h.store.(errorReporter)
	return ok && reporter.LastError() != nil
}

func (h *Hook[T]) objectLocked() (object, error) {
	raw, err := json.Marshal(h.data)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", h.realm.Name, err)
	}
	return parseObject(raw)
}

func (h *Hook[T]) replaceLocked(doc object) (T, error) {
	var next T
	raw, err := doc.MarshalJSON()
	if err != nil {
		return next, err
	}
	if err := json.Unmarshal(raw, &next); err != nil {
		return next, err
	}
	return next, nil
}

// decode turns stored text into a document merged onto the realm defaults.
func (h *Hook[T]) decode(raw json.RawMessage) (T, error) {
	var zero T

	persisted, err := parseObject(raw)
	if err != nil {
		return zero, fmt.Errorf("parse stored %s: %w", h.realm.Name, err)
	}
	persisted, err = h.realm.migrate(persisted)
	if err != nil {
		return zero, err
	}
	initial, err := h.realm.initialDocument()
	if err != nil {
		return zero, err
	}
	merged, err := mergeObjects(initial, persisted)
	if err != nil {
		return zero, fmt.Errorf("merge stored %s: %w", h.realm.Name, err)
	}

	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, fmt.Errorf("decode merged %s: %w", h.realm.Name, err)
	}
	return out, nil
}

func unknownKeys(doc object, values map[string]json.RawMessage) string {
	var unknown []string
	for key := range values {
		if _, ok := doc.get(key); !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return strings.Join(unknown, ", ")
}

func clone[T any](v T) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
