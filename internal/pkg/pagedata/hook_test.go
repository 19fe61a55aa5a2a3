package pagedata

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
	"github.com/yigit/forensicsite/internal/pkg/kvstore"
)

type testHero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type testStats struct {
	Count int `json:"count"`
}

type testItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type testPage struct {
	Hero  testHero   `json:"hero"`
	Stats testStats  `json:"stats"`
	Items []testItem `json:"items"`
}

func testRealm() Realm[testPage] {
	return Realm[testPage]{
		Name:       "events",
		StorageKey: "test:events",
		Version:    1,
		Defaults: func() testPage {
			return testPage{
				Hero:  testHero{Title: "A", Subtitle: "Default subtitle"},
				Stats: testStats{Count: 1},
				Items: []testItem{{ID: 1, Name: "Open day"}},
			}
		},
	}
}

func newTestHook(t *testing.T) (*Hook[testPage], *kvstore.MemoryStore, *kvstore.Adapter) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	adapter := kvstore.NewAdapter(store)
	return New(testRealm(), adapter), store, adapter
}

type failingStore struct{ err error }

func (f failingStore) Load(context.Context, string) json.RawMessage { return nil }
func (f failingStore) Save(context.Context, string, any) bool       { return false }
func (f failingStore) LastError() error                             { return f.err }

func TestHook_LoadSeedsWhenAbsent(t *testing.T) {
	ctx := context.Background()
	hook, store, _ := newTestHook(t)

	assert.Equal(t, StateUnloaded, hook.State())
	assert.Equal(t, LoadSeeded, hook.Load(ctx))
	assert.True(t, hook.IsLoaded())

	raw, err := store.Get(ctx, "test:events")
	require.NoError(t, err)
	assert.JSONEq(t, `{"hero":{"title":"A","subtitle":"Default subtitle"},"stats":{"count":1},"items":[{"id":1,"name":"Open day"}]}`, string(raw))
}

func TestHook_LoadMergesOntoDefaults(t *testing.T) {
	ctx := context.Background()
	hook, store, _ := newTestHook(t)
	require.NoError(t, store.Set(ctx, "test:events", []byte(`{"hero":{"title":"Stored"},"items":[]}`)))

	assert.Equal(t, LoadMerged, hook.Load(ctx))

	want := testPage{
		Hero:  testHero{Title: "Stored", Subtitle: "Default subtitle"},
		Stats: testStats{Count: 1},
		Items: []testItem{},
	}
	if diff := cmp.Diff(want, hook.Data()); diff != "" {
		t.Errorf("merged data mismatch (-want +got):\n%s", diff)
	}
}

func TestHook_LoadCorruptKeepsDefaultsAndStoredText(t *testing.T) {
	ctx := context.Background()
	hook, store, _ := newTestHook(t)
	require.NoError(t, store.Set(ctx, "test:events", []byte(`{not json`)))

	assert.Equal(t, LoadCorrupt, hook.Load(ctx))
	assert.True(t, hook.IsLoaded())
	assert.Equal(t, testRealm().Defaults(), hook.Data())

	raw, err := store.Get(ctx, "test:events")
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(raw), "corrupt text must not be overwritten on load")
}

type unreadableStore struct {
	*kvstore.MemoryStore
	err error
}

func (u unreadableStore) Get(context.Context, string) ([]byte, error) { return nil, u.err }

func TestHook_LoadReadFailureDoesNotSeed(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "test:events", []byte(`{"stats":{"count":42}}`)))
	hook := New(testRealm(), kvstore.NewAdapter(unreadableStore{MemoryStore: store, err: errors.New("connection refused")}))

	assert.Equal(t, LoadCorrupt, hook.Load(ctx))
	assert.Equal(t, testRealm().Defaults(), hook.Data())

	raw, err := store.Get(ctx, "test:events")
	require.NoError(t, err)
	assert.JSONEq(t, `{"stats":{"count":42}}`, string(raw), "stored data must survive a failed read")
}

func TestHook_LoadRunsOnce(t *testing.T) {
	ctx := context.Background()
	hook, store, _ := newTestHook(t)

	assert.Equal(t, LoadSeeded, hook.Load(ctx))
	require.NoError(t, store.Set(ctx, "test:events", []byte(`{"stats":{"count":9}}`)))
	assert.Equal(t, LoadSeeded, hook.Load(ctx))
	assert.Equal(t, 1, hook.Data().Stats.Count)
}

func TestHook_RoundTrip(t *testing.T) {
	ctx := context.Background()
	hook, _, adapter := newTestHook(t)
	hook.Load(ctx)

	edited := testPage{
		Hero:  testHero{Title: "<b>Bold</b> title", Subtitle: "sub"},
		Stats: testStats{Count: 42},
		Items: []testItem{{ID: 3, Name: "c"}, {ID: 2, Name: "b"}},
	}
	require.True(t, adapter.Save(ctx, "test:events", edited))

	reloaded := New(testRealm(), adapter)
	assert.Equal(t, LoadMerged, reloaded.Load(ctx))
	if diff := cmp.Diff(edited, reloaded.Data()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestHook_UpdateSectionReplacesOnlyThatSlice(t *testing.T) {
	ctx := context.Background()
	hook, store, _ := newTestHook(t)
	hook.Load(ctx)

	persisted, err := hook.UpdateSection(ctx, "stats", testStats{Count: 2})
	require.NoError(t, err)
	assert.True(t, persisted)

	data := hook.Data()
	assert.Equal(t, "A", data.Hero.Title)
	assert.Equal(t, 2, data.Stats.Count)
	assert.Equal(t, []testItem{{ID: 1, Name: "Open day"}}, data.Items)

	raw, err := store.Get(ctx, "test:events")
	require.NoError(t, err)
	assert.JSONEq(t, `{"hero":{"title":"A","subtitle":"Default subtitle"},"stats":{"count":2},"items":[{"id":1,"name":"Open day"}]}`, string(raw),
		"the whole document is persisted")
}

func TestHook_UpdateSectionIsFullOverwrite(t *testing.T) {
	ctx := context.Background()
	hook, _, _ := newTestHook(t)
	hook.Load(ctx)

	_, err := hook.UpdateSection(ctx, "hero", map[string]string{"title": "Only title"})
	require.NoError(t, err)
	assert.Equal(t, testHero{Title: "Only title"}, hook.Data().Hero)
}

func TestHook_UpdateSectionRejectsUnknownAndMisshapen(t *testing.T) {
	ctx := context.Background()
	hook, _, _ := newTestHook(t)
	hook.Load(ctx)

	_, err := hook.UpdateSection(ctx, "footer", "x")
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = hook.UpdateSection(ctx, "stats", "not an object")
	assert.ErrorIs(t, err, ErrInvalidSection)
	assert.Equal(t, 1, hook.Data().Stats.Count)
}

func TestHook_StorageFailureKeepsInMemoryUpdate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("quota exceeded")
	hook := New(testRealm(), failingStore{err: boom})
	hook.Load(ctx)

	persisted, err := hook.UpdateSection(ctx, "stats", testStats{Count: 5})
	require.NoError(t, err)
	assert.False(t, persisted)
	assert.Equal(t, 5, hook.Data().Stats.Count)
	assert.ErrorIs(t, hook.PersistError(), boom)

	assert.False(t, hook.SaveData(ctx))
}

func TestHook_ResetToDefault(t *testing.T) {
	ctx := context.Background()
	hook, store, _ := newTestHook(t)
	hook.Load(ctx)
	_, err := hook.UpdateSection(ctx, "stats", testStats{Count: 7})
	require.NoError(t, err)

	reset, _ := hook.ResetToDefault(ctx, confirm.Never)
	assert.False(t, reset)
	assert.Equal(t, 7, hook.Data().Stats.Count)

	reset, persisted := hook.ResetToDefault(ctx, confirm.Always)
	assert.True(t, reset)
	assert.True(t, persisted)
	assert.Equal(t, testRealm().Defaults(), hook.Data())

	raw, err := store.Get(ctx, "test:events")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"count":1`)
}

func TestHook_SubscribeReceivesEvents(t *testing.T) {
	ctx := context.Background()
	hook, _, _ := newTestHook(t)
	hook.Load(ctx)

	var events []Event
	unsubscribe := hook.Subscribe(func(ev Event) { events = append(events, ev) })

	_, err := hook.UpdateSection(ctx, "hero", testHero{Title: "B"})
	require.NoError(t, err)
	hook.SaveData(ctx)
	unsubscribe()
	hook.SaveData(ctx)

	require.Len(t, events, 2)
	assert.Equal(t, EventSectionUpdated, events[0].Kind)
	assert.Equal(t, "hero", events[0].Section)
	assert.Equal(t, "events", events[0].Realm)
	assert.True(t, events[0].Persisted)
	assert.Equal(t, EventSaved, events[1].Kind)
}

func TestHook_EditModeStartsOff(t *testing.T) {
	hook, _, _ := newTestHook(t)
	assert.False(t, hook.EditMode())
	hook.SetEditMode(true)
	assert.True(t, hook.EditMode())
}

func TestHook_MigrateRunsBeforeMerge(t *testing.T) {
	ctx := context.Background()
	realm := testRealm()
	realm.Version = 2
	realm.Migrate = func(doc map[string]json.RawMessage) map[string]json.RawMessage {
		if legacy, ok := doc["counters"]; ok {
			doc["stats"] = legacy
			delete(doc, "counters")
		}
		return doc
	}

	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "test:events", []byte(`{"counters":{"count":12}}`)))

	hook := New(realm, kvstore.NewAdapter(store))
	assert.Equal(t, LoadMerged, hook.Load(ctx))
	assert.Equal(t, 12, hook.Data().Stats.Count)
}

func TestHook_Import(t *testing.T) {
	ctx := context.Background()
	hook, _, _ := newTestHook(t)

	persisted, err := hook.Import(ctx, json.RawMessage(`{"stats":{"count":3}}`))
	require.NoError(t, err)
	assert.True(t, persisted)
	assert.Equal(t, 3, hook.Data().Stats.Count)
	assert.Equal(t, "A", hook.Data().Hero.Title)

	_, err = hook.Import(ctx, json.RawMessage(`[]`))
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestRealm_Info(t *testing.T) {
	info := testRealm().Info()
	assert.Equal(t, []string{"hero", "stats", "items"}, info.Sections)
	assert.Equal(t, "test:events", info.StorageKey)
}

func TestHook_UpdateSectionsIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	hook, _, _ := newTestHook(t)
	hook.Load(ctx)

	var events []Event
	hook.Subscribe(func(ev Event) { events = append(events, ev) })

	_, err := hook.UpdateSections(ctx, map[string]any{
		"stats":  testStats{Count: 9},
		"footer": "nope",
	})
	assert.ErrorIs(t, err, ErrUnknownSection)
	assert.Equal(t, 1, hook.Data().Stats.Count)

	persisted, err := hook.UpdateSections(ctx, map[string]any{
		"items": []testItem{{ID: 2, Name: "Renamed"}},
		"stats": testStats{Count: 9},
	})
	require.NoError(t, err)
	assert.True(t, persisted)
	assert.Equal(t, 9, hook.Data().Stats.Count)
	assert.Equal(t, "Renamed", hook.Data().Items[0].Name)

	require.Len(t, events, 2)
	assert.Equal(t, "stats", events[0].Section, "events follow document order")
	assert.Equal(t, "items", events[1].Section)
}
