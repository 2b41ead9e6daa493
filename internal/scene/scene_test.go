package scene

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gamekit-dev/gamekit/internal/project"
)

const testScene = "assets/scenes/main.scene.yaml"

func newTestProject(t *testing.T) *project.Project {
	t.Helper()

	proj, err := project.Init(t.TempDir(), project.InitOptions{Name: "test"})
	require.NoError(t, err)
	return proj
}

func TestLoad_MissingSceneIsEmpty(t *testing.T) {
	proj := newTestProject(t)

	g, err := Load(proj, testScene)
	require.NoError(t, err)
	assert.Empty(t, g.Objects())
	assert.False(t, g.Dirty())
}

func TestAddSaveLoad(t *testing.T) {
	proj := newTestProject(t)

	g, err := Load(proj, testScene)
	require.NoError(t, err)

	g.Add(&Object{Name: "AdsManager", Components: []Component{
		{Type: "AdsManager", Properties: map[string]any{"initOnStart": true}},
	}})
	assert.True(t, g.Dirty())
	require.NoError(t, g.Save())
	assert.False(t, g.Dirty())

	reloaded, err := Load(proj, testScene)
	require.NoError(t, err)
	require.Len(t, reloaded.Objects(), 1)

	o := reloaded.Objects()[0]
	assert.Equal(t, "AdsManager", o.Name)
	assert.NotEmpty(t, o.ID, "ids are assigned on add")
	require.Len(t, o.Components, 1)
	assert.Equal(t, "AdsManager", o.Components[0].Type)
}

func TestSave_CleanIsNoop(t *testing.T) {
	proj := newTestProject(t)

	g, err := Load(proj, testScene)
	require.NoError(t, err)
	require.NoError(t, g.Save())

	assert.False(t, proj.FileExists(testScene), "a clean graph writes nothing")
}

func TestFind(t *testing.T) {
	g := &Graph{}
	g.objects = []*Object{
		{Name: "First"},
		{Name: "Second"},
	}

	o, ok := g.Find("Second")
	require.True(t, ok)
	assert.Equal(t, "Second", o.Name)

	_, ok = g.Find("Third")
	assert.False(t, ok)
}

func TestSave_AppendsUndoJournal(t *testing.T) {
	proj := newTestProject(t)

	g, err := Load(proj, testScene)
	require.NoError(t, err)
	g.Add(&Object{Name: "AdsManager"})
	require.NoError(t, g.Save())

	g, err = Load(proj, testScene)
	require.NoError(t, err)
	g.Add(&Object{Name: "AuthManager"})
	require.NoError(t, g.Save())

	data, err := os.ReadFile(proj.Resolve(UndoFile))
	require.NoError(t, err)

	var journal struct {
		Entries []struct {
			Op     string `yaml:"op"`
			Object string `yaml:"object"`
		} `yaml:"entries"`
	}
	require.NoError(t, yaml.Unmarshal(data, &journal))
	require.Len(t, journal.Entries, 2)
	assert.Equal(t, "create-object", journal.Entries[0].Op)
	assert.Equal(t, "AdsManager", journal.Entries[0].Object)
	assert.Equal(t, "AuthManager", journal.Entries[1].Object)
}
