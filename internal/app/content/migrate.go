package content

import (
	"encoding/json"
)

// ensureIDs gives every entry of the named list sections a positive id that no other
// entry in the list shares. The first entry holding an id keeps it; entries with no id
// or a repeated one get max+1 in list order.
func ensureIDs(sections ...string) func(map[string]json.RawMessage) map[string]json.RawMessage {
	return func(doc map[string]json.RawMessage) map[string]json.RawMessage {
		for _, name := range sections {
			raw, ok := doc[name]
			if !ok {
				continue
			}
			if fixed, changed := assignIDs(raw); changed {
				doc[name] = fixed
			}
		}
		return doc
	}
}

func assignIDs(raw json.RawMessage) (json.RawMessage, bool) {
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return raw, false
	}

	var maxID int64
	for _, e := range entries {
		if id, ok := entryID(e); ok && id > maxID {
			maxID = id
		}
	}

	seen := make(map[int64]bool, len(entries))
	changed := false
	for _, e := range entries {
		if e == nil {
			continue
		}
		if id, ok := entryID(e); ok && !seen[id] {
			seen[id] = true
			continue
		}
		maxID++
		e["id"] = json.RawMessage(jsonInt(maxID))
		changed = true
	}
	if !changed {
		return raw, false
	}

	out, err := json.Marshal(entries)
	if err != nil {
		return raw, false
	}
	return out, true
}

func entryID(e map[string]json.RawMessage) (int64, bool) {
	raw, ok := e["id"]
	if !ok {
		return 0, false
	}
	var id int64
	if err := json.Unmarshal(raw, &id); err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func jsonInt(v int64) []byte {
	out, _ := json.Marshal(v)
	return out
}
