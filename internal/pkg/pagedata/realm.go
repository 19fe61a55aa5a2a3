package pagedata

import (
	"encoding/json"
	"fmt"
)

// Realm is the versioned default-value provider for one independently persisted page.
// Defaults must return a fresh value on every call; it doubles as seed data and as the
// shape persisted documents are merged onto.
type Realm[T any] struct {
	Name       string
	StorageKey string
	Version    int
	Defaults   func() T

	// Migrate, when set, rewrites a parsed persisted document before it is merged.
	// It receives the top-level members by name and returns the members to merge.
	Migrate func(doc map[string]json.RawMessage) map[string]json.RawMessage
}

// Info describes a realm without its type parameter.
type Info struct {
	Name       string   `json:"name"`
	StorageKey string   `json:"storageKey"`
	Version    int      `json:"version"`
	Sections   []string `json:"sections"`
}

func (r Realm[T]) initialDocument() (object, error) {
	raw, err := json.Marshal(r.Defaults())
	if err != nil {
		return nil, fmt.Errorf("encode %s defaults: %w", r.Name, err)
	}
	obj, err := parseObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%s defaults: %w", r.Name, err)
	}
	return obj, nil
}

// Info returns the realm description, including its section names.
func (r Realm[T]) Info() Info {
	info := Info{Name: r.Name, StorageKey: r.StorageKey, Version: r.Version}
	if obj, err := r.initialDocument(); err == nil {
		info.Sections = obj.keys()
	}
	return info
}

func (r Realm[T]) migrate(persisted object) (object, error) {
	if r.Migrate == nil {
		return persisted, nil
	}
	members := make(map[string]json.RawMessage, len(persisted))
	for _, f := range persisted {
		members[f.Key] = f.Value
	}
	migrated := r.Migrate(members)

	// keep persisted order for surviving members, then any new ones in initial order
	out := make(object, 0, len(migrated))
	for _, f := range persisted {
		if v, ok := migrated[f.Key]; ok {
			out = append(out, field{Key: f.Key, Value: v})
			delete(migrated, f.Key)
		}
	}
	initial, err := r.initialDocument()
	if err != nil {
		return nil, err
	}
	for _, key := range initial.keys() {
		if v, ok := migrated[key]; ok {
			out = append(out, field{Key: key, Value: v})
		}
	}
	return out, nil
}
