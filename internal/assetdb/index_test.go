package assetdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamekit-dev/gamekit/internal/project"
)

func newTestIndex(t *testing.T) (*Index, *project.Project) {
	t.Helper()

	proj, err := project.Init(t.TempDir(), project.InitOptions{Name: "test"})
	require.NoError(t, err)
	return NewIndex(proj), proj
}

func TestIndexRecord(t *testing.T) {
	idx, proj := newTestIndex(t)

	require.NoError(t, idx.Record("assets/config/AdsConfig.yaml", "guid-1"))
	assert.True(t, idx.Contains("assets/config/AdsConfig.yaml"))
	assert.False(t, idx.Contains("assets/config/Other.yaml"))

	// Flushed to disk: a fresh index over the same project sees the entry.
	fresh := NewIndex(proj)
	assert.True(t, fresh.Contains("assets/config/AdsConfig.yaml"))
}

func TestIndexRefresh(t *testing.T) {
	idx, proj := newTestIndex(t)

	dir := proj.Resolve("modules/ads")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ads_manager.go"), []byte("package ads\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))

	require.NoError(t, idx.Refresh("modules/ads"))

	assert.True(t, idx.Contains("modules/ads"))
	assert.True(t, idx.Contains("modules/ads/ads_manager.go"))
	assert.False(t, idx.Contains("modules/ads/sub"), "subdirectories need their own refresh")
}

func TestIndexRefresh_MissingFolder(t *testing.T) {
	idx, _ := newTestIndex(t)
	require.NoError(t, idx.Refresh("modules/nope"))
	assert.False(t, idx.Contains("modules/nope"))
}

func TestIndexRecord_PreservesGUID(t *testing.T) {
	idx, _ := newTestIndex(t)

	require.NoError(t, idx.Record("assets/config/AdsConfig.yaml", "guid-1"))
	// A later refresh of the parent folder must not drop the GUID.
	require.NoError(t, idx.Record("assets/config/AdsConfig.yaml", ""))

	paths := idx.Paths()
	assert.Contains(t, paths, "assets/config/AdsConfig.yaml")
	assert.Equal(t, "guid-1", idx.entries["assets/config/AdsConfig.yaml"].GUID)
}

func TestIndexCorrupt_Rebuilds(t *testing.T) {
	idx, proj := newTestIndex(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(proj.Resolve(IndexFile)), 0o755))
	require.NoError(t, os.WriteFile(proj.Resolve(IndexFile), []byte("{not yaml: ["), 0o644))

	// Derived state: corrupt index is discarded, not fatal.
	assert.False(t, idx.Contains("anything"))
	require.NoError(t, idx.Record("assets/config/New.yaml", "g"))
	assert.True(t, idx.Contains("assets/config/New.yaml"))
}

func TestIndexPaths_Sorted(t *testing.T) {
	idx, _ := newTestIndex(t)

	require.NoError(t, idx.Record("b.yaml", ""))
	require.NoError(t, idx.Record("a.yaml", ""))
	require.NoError(t, idx.Record("c.yaml", ""))

	assert.Equal(t, []string{"a.yaml", "b.yaml", "c.yaml"}, idx.Paths())
}
