package sections

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
	"github.com/yigit/forensicsite/internal/pkg/kvstore"
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
)

func newEditors(t *testing.T) (*content.Registry, *Editors, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	reg := content.NewRegistry(kvstore.NewAdapter(store), "", zerolog.Nop())
	reg.LoadAll(context.Background())
	return reg, NewEditors(reg), store
}

func TestListSection_RequiresEditMode(t *testing.T) {
	_, eds, _ := newEditors(t)

	_, _, err := eds.FacultyMembers.AddItem(context.Background(), models.FacultyMember{Name: "New"})
	assert.ErrorIs(t, err, apperrors.ErrNotEditing)

	_, err = eds.Faculty.Rename(context.Background(), "Core Faculty", "Permanent Faculty")
	assert.ErrorIs(t, err, apperrors.ErrNotEditing)
}

func TestListSection_AddUpdateDelete(t *testing.T) {
	ctx := context.Background()
	reg, eds, store := newEditors(t)
	reg.Faculty().SetEditMode(true)

	ed, err := eds.Items("faculty", "members")
	require.NoError(t, err)

	raw, change, err := ed.Add(ctx, json.RawMessage(`{"id":1,"name":"Dr. New","category":"Core Faculty"}`))
	require.NoError(t, err)
	assert.Equal(t, Change{Applied: true, Persisted: true}, change)

	var added models.FacultyMember
	require.NoError(t, json.Unmarshal(raw, &added))
	assert.Equal(t, int64(4), added.ID, "client supplied ids are replaced")

	raw, _, err = ed.Update(ctx, added.ID, json.RawMessage(`{"title":"Lecturer","id":99}`))
	require.NoError(t, err)
	var updated models.FacultyMember
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Lecturer", updated.Title)
	assert.Equal(t, "Dr. New", updated.Name, "unpatched fields are kept")
	assert.Equal(t, added.ID, updated.ID)

	stored, err := store.Get(ctx, "forensic:faculty")
	require.NoError(t, err)
	assert.Contains(t, string(stored), "Lecturer")

	change, err = ed.Delete(ctx, added.ID, confirm.Never)
	require.NoError(t, err)
	assert.False(t, change.Applied)

	change, err = ed.Delete(ctx, added.ID, confirm.Always)
	require.NoError(t, err)
	assert.True(t, change.Applied)
	assert.Equal(t, content.DefaultFaculty().Members, reg.Faculty().Data().Members)

	_, err = ed.Delete(ctx, added.ID, confirm.Always)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestCategorySection_RenameIsOneWrite(t *testing.T) {
	ctx := context.Background()
	reg, eds, _ := newEditors(t)
	reg.Faculty().SetEditMode(true)

	writes := 0
	reg.Faculty().Subscribe(func(pagedata.Event) { writes++ })

	change, err := eds.Faculty.Rename(ctx, "Core Faculty", "Permanent Faculty")
	require.NoError(t, err)
	assert.True(t, change.Persisted)

	data := reg.Faculty().Data()
	assert.Equal(t, []string{"Permanent Faculty", "Visiting Faculty", models.DefaultFacultyCategory}, data.Categories)
	assert.Equal(t, "Permanent Faculty", data.Members[0].Category)
	assert.Equal(t, "Permanent Faculty", data.Members[1].Category)
	visible, active, err := eds.Faculty.Visible(FilterAfterRename("Core Faculty", "Core Faculty", "Permanent Faculty"))
	require.NoError(t, err)
	assert.Equal(t, "Permanent Faculty", active)
	assert.Len(t, visible, 2)
	assert.Equal(t, 2, writes, "one event per rewritten section from a single write")
}

func TestCategorySection_DeleteFallsBack(t *testing.T) {
	ctx := context.Background()
	reg, eds, _ := newEditors(t)
	reg.Faculty().SetEditMode(true)

	change, err := eds.Faculty.Delete(ctx, "Visiting Faculty", confirm.Always)
	require.NoError(t, err)
	assert.True(t, change.Applied)

	data := reg.Faculty().Data()
	assert.Equal(t, models.DefaultFacultyCategory, data.Members[2].Category)
	assert.NotContains(t, data.Categories, "Visiting Faculty")
	_, _, err = eds.Faculty.Visible("Visiting Faculty")
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	_, err = eds.Faculty.Delete(ctx, models.DefaultFacultyCategory, confirm.Always)
	assert.ErrorIs(t, err, apperrors.ErrDefaultCategory)
	_, err = eds.Faculty.Rename(ctx, models.DefaultFacultyCategory, "Guests")
	assert.ErrorIs(t, err, apperrors.ErrDefaultCategory)
}

func TestBind(t *testing.T) {
	ctx := context.Background()
	reg, _, _ := newEditors(t)

	hero := Bind(reg.Events(), "hero", func(d models.EventsPageData) models.Hero { return d.Hero })
	assert.False(t, hero.EditMode)
	_, err := hero.UpdateData(ctx, models.Hero{Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotEditing)

	reg.Events().SetEditMode(true)
	persisted, err := hero.UpdateData(ctx, models.Hero{Title: "New title"})
	require.NoError(t, err)
	assert.True(t, persisted)
	assert.Equal(t, "New title", reg.Events().Data().Hero.Title)
}

func TestEditors_Lookup(t *testing.T) {
	_, eds, _ := newEditors(t)

	_, err := eds.Items("courses", "books")
	assert.NoError(t, err)
	_, err = eds.Items("courses", "hero")
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)
	_, err = eds.Categories("events")
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)
}

func TestCategorySection_FilterIsPerCaller(t *testing.T) {
	_, eds, _ := newEditors(t)

	core, active, err := eds.Faculty.Visible("Core Faculty")
	require.NoError(t, err)
	assert.Equal(t, "Core Faculty", active)
	assert.Len(t, core, 2)

	all, active, err := eds.Faculty.Visible("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, active)
	assert.Greater(t, len(all), len(core))
}
