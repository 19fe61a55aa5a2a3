package pagedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when a document that must be a JSON object is not one.
var ErrNotObject = errors.New("pagedata: document is not a JSON object")

type jsonKind int

const (
	kindInvalid jsonKind = iota
	kindNull
	kindObject
	kindArray
	kindString
	kindNumber
	kindBool
)

func kindOf(raw json.RawMessage) jsonKind {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return kindInvalid
	}
	switch trimmed[0] {
	case '{':
		return kindObject
	case '[':
		return kindArray
	case '"':
		return kindString
	case 't', 'f':
		return kindBool
	case 'n':
		return kindNull
	default:
		return kindNumber
	}
}

// field is one member of a JSON object, kept in document order.
type field struct {
	Key   string
	Value json.RawMessage
}

type object []field

func (o object) get(key string) (json.RawMessage, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (o object) set(key string, value json.RawMessage) object {
	for i, f := range o {
		if f.Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, field{Key: key, Value: value})
}

func (o object) keys() []string {
	keys := make([]string, len(o))
	for i, f := range o {
		keys[i] = f.Key
	}
	return keys
}

// MarshalJSON writes the members in order.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := json.Compact(&buf, f.Value); err != nil {
			return nil, fmt.Errorf("member %q: %w", f.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// parseObject decodes raw as a JSON object preserving member order.
// Duplicate keys keep the last value, as encoding/json does.
func parseObject(raw json.RawMessage) (object, error) {
	if kindOf(raw) != kindObject {
		return nil, ErrNotObject
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var obj object
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		obj = obj.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after object")
	}
	return obj, nil
}

// MergeWithDefaults reconciles a persisted document against the initial document.
//
// Every top-level member of initial appears in the result, in initial's order. For a
// member present in persisted:
//   - objects are merged one level deep, persisted members winning;
//   - arrays are replaced wholesale when the persisted value is an array;
//   - scalars are replaced when the persisted value has the same JSON kind;
//   - anything else keeps the initial value.
//
// Top-level members only found in persisted are dropped.
func MergeWithDefaults(initial, persisted json.RawMessage) (json.RawMessage, error) {
	base, err := parseObject(initial)
	if err != nil {
		return nil, fmt.Errorf("initial data: %w", err)
	}
	override, err := parseObject(persisted)
	if err != nil {
		return nil, fmt.Errorf("persisted data: %w", err)
	}
	return mergeObjects(base, override)
}

func mergeObjects(base, override object) (json.RawMessage, error) {
	merged := make(object, 0, len(base))
	for _, f := range base {
		value, ok := override.get(f.Key)
		if !ok {
			merged = append(merged, f)
			continue
		}
		next, err := mergeMember(f.Value, value)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", f.Key, err)
		}
		merged = append(merged, field{Key: f.Key, Value: next})
	}
	return merged.MarshalJSON()
}

func mergeMember(initial, persisted json.RawMessage) (json.RawMessage, error) {
	initialKind, persistedKind := kindOf(initial), kindOf(persisted)

	switch initialKind {
	case kindObject:
		if persistedKind != kindObject {
			return initial, nil
		}
		base, err := parseObject(initial)
		if err != nil {
			return nil, err
		}
		override, err := parseObject(persisted)
		if err != nil {
			return nil, err
		}
		for _, f := range override {
			base = base.set(f.Key, f.Value)
		}
		return base.MarshalJSON()
	case kindNull:
		return persisted, nil
	default:
		if persistedKind == initialKind {
			return persisted, nil
		}
		return initial, nil
	}
}
