package sections

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
)

// Page is the part of a page hook a section editor writes through.
type Page[T any] interface {
	Name() string
	Data() T
	EditMode() bool
	UpdateSection(ctx context.Context, key string, value any) (bool, error)
	UpdateSections(ctx context.Context, values map[string]any) (bool, error)
}

var _ Page[struct{}] = (*pagedata.Hook[struct{}])(nil)

// Change is the outcome of a section edit.
type Change struct {
	Applied   bool `json:"applied"`
	Persisted bool `json:"persisted"`
}

// ItemEditor edits the entries of one list section without knowing their type.
type ItemEditor interface {
	Realm() string
	Section() string
	Items() (json.RawMessage, error)
	Add(ctx context.Context, fields json.RawMessage) (json.RawMessage, Change, error)
	Update(ctx context.Context, id int64, fields json.RawMessage) (json.RawMessage, Change, error)
	Delete(ctx context.Context, id int64, c confirm.Confirmer) (Change, error)
}

// CategoryEditor edits the category list of a page and cascades into its items.
type CategoryEditor interface {
	Realm() string
	Categories() []string
	Fallback() string
	VisibleItems(active string) (json.RawMessage, string, error)
	Add(ctx context.Context, name string) (Change, error)
	Rename(ctx context.Context, from, to string) (Change, error)
	Delete(ctx context.Context, name string, c confirm.Confirmer) (Change, error)
}

// Binding is what a rendered section receives: its slice, whether editing is on, and
// the callback that writes a whole new slice back.
type Binding[S any] struct {
	Section    string
	Data       S
	EditMode   bool
	UpdateData func(ctx context.Context, next S) (bool, error)
}

// Bind reads one section out of page.
func Bind[T, S any](page Page[T], section string, get func(T) S) Binding[S] {
	return Binding[S]{
		Section:  section,
		Data:     get(page.Data()),
		EditMode: page.EditMode(),
		UpdateData: func(ctx context.Context, next S) (bool, error) {
			if !page.EditMode() {
				return false, apperrors.ErrNotEditing
			}
			return page.UpdateSection(ctx, section, next)
		},
	}
}

// ListSection edits the list stored in one section of a page.
type ListSection[T any, E models.Identifiable] struct {
	page    Page[T]
	section string
	list    func(T) []E
	withID  func(E, int64) E
	noun    string
}

// NewListSection binds a list section. list reads the slice out of the page document and
// withID stamps an id onto a new or patched entry.
func NewListSection[T any, E models.Identifiable](page Page[T], section, noun string, list func(T) []E, withID func(E, int64) E) *ListSection[T, E] {
	return &ListSection[T, E]{page: page, section: section, noun: noun, list: list, withID: withID}
}

func (l *ListSection[T, E]) Realm() string   { return l.page.Name() }
func (l *ListSection[T, E]) Section() string { return l.section }

// List returns the current entries.
func (l *ListSection[T, E]) List() []E {
	if list := l.list(l.page.Data()); list != nil {
		return list
	}
	return []E{}
}

func (l *ListSection[T, E]) Items() (json.RawMessage, error) {
	return json.Marshal(l.List())
}

// AddItem appends item under a fresh id.
func (l *ListSection[T, E]) AddItem(ctx context.Context, item E) (E, Change, error) {
	if !l.page.EditMode() {
		return item, Change{}, apperrors.ErrNotEditing
	}
	next, added := AddItem(l.List(), func(id int64) E { return l.withID(item, id) })
	persisted, err := l.page.UpdateSection(ctx, l.section, next)
	if err != nil {
		return item, Change{}, err
	}
	return added, Change{Applied: true, Persisted: persisted}, nil
}

// UpdateItem applies patch to the entry with id. The id cannot be changed by patch.
func (l *ListSection[T, E]) UpdateItem(ctx context.Context, id int64, patch func(E) E) (E, Change, error) {
	var updated E
	if !l.page.EditMode() {
		return updated, Change{}, apperrors.ErrNotEditing
	}
	next, ok := UpdateItem(l.List(), id, func(e E) E {
		updated = l.withID(patch(e), id)
		return updated
	})
	if !ok {
		return updated, Change{}, fmt.Errorf("%w: %s %d", apperrors.ErrItemNotFound, l.noun, id)
	}
	persisted, err := l.page.UpdateSection(ctx, l.section, next)
	if err != nil {
		return updated, Change{}, err
	}
	return updated, Change{Applied: true, Persisted: persisted}, nil
}

// DeleteItem removes the entry with id once c agrees.
func (l *ListSection[T, E]) DeleteItem(ctx context.Context, id int64, c confirm.Confirmer) (Change, error) {
	if !l.page.EditMode() {
		return Change{}, apperrors.ErrNotEditing
	}
	list := l.List()
	if _, ok := FindItem(list, id); !ok {
		return Change{}, fmt.Errorf("%w: %s %d", apperrors.ErrItemNotFound, l.noun, id)
	}
	next, deleted := DeleteItem(ctx, list, id, c, fmt.Sprintf("Delete this %s?", l.noun))
	if !deleted {
		return Change{}, nil
	}
	persisted, err := l.page.UpdateSection(ctx, l.section, next)
	if err != nil {
		return Change{}, err
	}
	return Change{Applied: true, Persisted: persisted}, nil
}

func (l *ListSection[T, E]) Add(ctx context.Context, fields json.RawMessage) (json.RawMessage, Change, error) {
	var item E
	if err := json.Unmarshal(fields, &item); err != nil {
		return nil, Change{}, fmt.Errorf("%w: %s: %v", apperrors.ErrInvalidFormat, l.noun, err)
	}
	added, change, err := l.AddItem(ctx, item)
	if err != nil {
		return nil, change, err
	}
	raw, err := json.Marshal(added)
	return raw, change, err
}

// Update shallow-merges fields onto the entry with id.
func (l *ListSection[T, E]) Update(ctx context.Context, id int64, fields json.RawMessage) (json.RawMessage, Change, error) {
	var patchErr error
	updated, change, err := l.UpdateItem(ctx, id, func(e E) E {
		merged, err := mergeFields(e, fields)
		if err != nil {
			patchErr = err
			return e
		}
		return merged
	})
	if patchErr != nil {
		return nil, Change{}, fmt.Errorf("%w: %s: %v", apperrors.ErrInvalidFormat, l.noun, patchErr)
	}
	if err != nil {
		return nil, change, err
	}
	raw, err := json.Marshal(updated)
	return raw, change, err
}

func (l *ListSection[T, E]) Delete(ctx context.Context, id int64, c confirm.Confirmer) (Change, error) {
	return l.DeleteItem(ctx, id, c)
}

// CategorySection edits the category list of a page together with the categorised list.
type CategorySection[T any, E models.Categorized] struct {
	page       Page[T]
	catSection string
	itemKey    string
	fallback   string
	categories func(T) []string
	items      func(T) []E
	setCat     func(E, string) E
}

// NewCategorySection binds the categories section and the item section it classifies.
func NewCategorySection[T any, E models.Categorized](page Page[T], catSection, itemSection, fallback string,
	categories func(T) []string, items func(T) []E, setCat func(E, string) E) *CategorySection[T, E] {
	return &CategorySection[T, E]{
		page:       page,
		catSection: catSection,
		itemKey:    itemSection,
		fallback:   fallback,
		categories: categories,
		items:      items,
		setCat:     setCat,
	}
}

func (c *CategorySection[T, E]) Realm() string    { return c.page.Name() }
func (c *CategorySection[T, E]) Fallback() string { return c.fallback }

func (c *CategorySection[T, E]) Categories() []string {
	if cats := c.categories(c.page.Data()); cats != nil {
		return cats
	}
	return []string{}
}

// Visible returns the items under the active tab, which the caller keeps.
func (c *CategorySection[T, E]) Visible(active string) ([]E, string, error) {
	data := c.page.Data()
	active, err := SelectFilter(active, c.categories(data))
	if err != nil {
		return nil, "", err
	}
	return FilterItems(c.items(data), active), active, nil
}

func (c *CategorySection[T, E]) VisibleItems(active string) (json.RawMessage, string, error) {
	visible, active, err := c.Visible(active)
	if err != nil {
		return nil, "", err
	}
	if visible == nil {
		visible = []E{}
	}
	raw, err := json.Marshal(visible)
	return raw, active, err
}

func (c *CategorySection[T, E]) Add(ctx context.Context, name string) (Change, error) {
	if !c.page.EditMode() {
		return Change{}, apperrors.ErrNotEditing
	}
	next, err := AddCategory(c.Categories(), name)
	if err != nil {
		return Change{}, err
	}
	persisted, err := c.page.UpdateSection(ctx, c.catSection, next)
	if err != nil {
		return Change{}, err
	}
	return Change{Applied: true, Persisted: persisted}, nil
}

// Rename renames a category and every item in it in a single write.
func (c *CategorySection[T, E]) Rename(ctx context.Context, from, to string) (Change, error) {
	if !c.page.EditMode() {
		return Change{}, apperrors.ErrNotEditing
	}
	if from == c.fallback {
		return Change{}, fmt.Errorf("%w: %s", apperrors.ErrDefaultCategory, from)
	}
	data := c.page.Data()
	cats, items, err := RenameCategory(c.categories(data), c.items(data), from, to, c.setCat)
	if err != nil {
		return Change{}, err
	}
	persisted, err := c.page.UpdateSections(ctx, map[string]any{c.catSection: cats, c.itemKey: items})
	if err != nil {
		return Change{}, err
	}
	return Change{Applied: true, Persisted: persisted}, nil
}

// Delete removes a category once confirmed and moves its items to the fallback.
// Callers showing the deleted tab go back to FilterAll.
func (c *CategorySection[T, E]) Delete(ctx context.Context, name string, confirmer confirm.Confirmer) (Change, error) {
	if !c.page.EditMode() {
		return Change{}, apperrors.ErrNotEditing
	}
	data := c.page.Data()
	cats, items, deleted, err := DeleteCategory(ctx, c.categories(data), c.items(data), name, c.fallback, c.setCat, confirmer)
	if err != nil || !deleted {
		return Change{}, err
	}
	persisted, err := c.page.UpdateSections(ctx, map[string]any{c.catSection: cats, c.itemKey: items})
	if err != nil {
		return Change{}, err
	}
	return Change{Applied: true, Persisted: persisted}, nil
}

// mergeFields overlays the top-level members of fields onto e.
func mergeFields[E any](e E, fields json.RawMessage) (E, error) {
	base, err := json.Marshal(e)
	if err != nil {
		return e, err
	}
	var current map[string]json.RawMessage
	if err := json.Unmarshal(base, &current); err != nil {
		return e, err
	}
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(fields, &patch); err != nil {
		return e, err
	}
	for k, v := range patch {
		current[k] = v
	}
	merged, err := json.Marshal(current)
	if err != nil {
		return e, err
	}
	var out E
	if err := json.Unmarshal(merged, &out); err != nil {
		return e, err
	}
	return out, nil
}
