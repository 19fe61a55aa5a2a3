package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/pkg/kvstore"
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
)

type readOnlyStore struct {
	*kvstore.MemoryStore
}

func (readOnlyStore) Set(context.Context, string, []byte) error {
	return errors.New("read-only volume")
}

func TestSeedRealms_WritesDefaultsThenRewrites(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	adapter := kvstore.NewAdapter(store)

	reports, err := SeedRealms(ctx, content.NewRegistry(adapter, "", zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, reports, 5)
	for _, r := range reports {
		assert.Equal(t, pagedata.LoadSeeded, r.Status, r.Realm)
		assert.True(t, r.Persisted, r.Realm)
	}

	keys, err := store.Keys(ctx, content.DefaultKeyPrefix)
	require.NoError(t, err)
	assert.Len(t, keys, 5)

	reports, err = SeedRealms(ctx, content.NewRegistry(adapter, "", zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)
	for _, r := range reports {
		assert.Equal(t, pagedata.LoadMerged, r.Status, r.Realm)
	}
}

func TestSeedRealms_CorruptDocumentIsLeftAlone(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	key := content.StorageKey(content.DefaultKeyPrefix, content.RealmEvents)
	require.NoError(t, store.Set(ctx, key, []byte("{not json")))

	reports, err := SeedRealms(ctx, content.NewRegistry(kvstore.NewAdapter(store), "", zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, pagedata.LoadCorrupt, reports[0].Status)

	raw, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))
}

func TestSeedRealms_ReportsWriteFailures(t *testing.T) {
	store := readOnlyStore{kvstore.NewMemoryStore()}
	registry := content.NewRegistry(kvstore.NewAdapter(store), "", zerolog.Nop())

	reports, err := SeedRealms(context.Background(), registry, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only volume")
	for _, r := range reports {
		assert.False(t, r.Persisted)
	}
}
