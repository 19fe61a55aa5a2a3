// Package sections holds the list and category editing rules shared by the page
// sections: stable ids, confirmation before deletion, and category cascades.
package sections

import (
	"context"

	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
)

// NextID returns one more than the largest id in list, or 1 for an empty list.
func NextID[E models.Identifiable](list []E) int64 {
	var maxID int64
	for _, e := range list {
		if id := e.GetID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// FindItem returns the entry with id.
func FindItem[E models.Identifiable](list []E, id int64) (E, bool) {
	for _, e := range list {
		if e.GetID() == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// AddItem appends the entry built for a fresh id and returns the new list.
func AddItem[E models.Identifiable](list []E, build func(id int64) E) ([]E, E) {
	item := build(NextID(list))
	out := make([]E, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item), item
}

// UpdateItem replaces the entry with id by patch(entry). The list is not modified in
// place; false means no entry had that id.
func UpdateItem[E models.Identifiable](list []E, id int64, patch func(E) E) ([]E, bool) {
	out := make([]E, len(list))
	copy(out, list)
	for i, e := range out {
		if e.GetID() == id {
			out[i] = patch(e)
			return out, true
		}
	}
	return list, false
}

// DeleteItem removes the entry with id once c agrees. It returns the list unchanged and
// false when the entry is missing or the confirmation is declined.
func DeleteItem[E models.Identifiable](ctx context.Context, list []E, id int64, c confirm.Confirmer, prompt string) ([]E, bool) {
	if _, ok := FindItem(list, id); !ok {
		return list, false
	}
	if c == nil || !c.Confirm(ctx, prompt) {
		return list, false
	}

	out := make([]E, 0, len(list)-1)
	for _, e := range list {
		if e.GetID() != id {
			out = append(out, e)
		}
	}
	return out, true
}
