package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_content_documents.sql"))
	assert.Equal(t, "002", Version("migrations/002_add_index.sql"))
	assert.Equal(t, "init.sql", Version("init.sql"))
}

func TestPending_SortsSQLFilesOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"002_second.sql": {Data: []byte("SELECT 2;")},
		"001_first.sql":  {Data: []byte("SELECT 1;")},
		"README.md":      {Data: []byte("notes")},
		"old/003.sql":    {Data: []byte("SELECT 3;")},
	}

	files, err := Pending(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_first.sql", "002_second.sql"}, files)
}
