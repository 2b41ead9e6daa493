package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamekit-dev/gamekit/internal/typereg"
)

func newTestWirer(t *testing.T) (*Wirer, *Graph) {
	t.Helper()

	scope := typereg.NewScope("test")
	scope.Register(typereg.Type{
		Name: "AdsManager",
		Kind: typereg.KindComponent,
		New:  func() any { return map[string]any{"initOnStart": true} },
	})

	g := &Graph{}
	return NewWirer(g, typereg.NewResolver(scope)), g
}

func TestMarkerName(t *testing.T) {
	assert.Equal(t, "——— Services ———", MarkerName("Services"))
}

func TestEnsureMarker(t *testing.T) {
	w, g := newTestWirer(t)

	first := w.EnsureMarker("Services")
	assert.True(t, first.Marker)
	assert.Equal(t, MarkerName("Services"), first.Name)
	assert.Len(t, g.Objects(), 1)

	second := w.EnsureMarker("Services")
	assert.Same(t, first, second, "same-named marker is reused")
	assert.Len(t, g.Objects(), 1)
}

func TestEnsureManager(t *testing.T) {
	w, g := newTestWirer(t)

	o := w.EnsureManager("AdsManager", "AdsManager")
	require.Len(t, o.Components, 1)
	assert.Equal(t, "AdsManager", o.Components[0].Type)
	assert.False(t, o.Marker)
	assert.Len(t, g.Objects(), 1)
	assert.True(t, g.Dirty())
}

func TestEnsureManager_NameCollisionSkips(t *testing.T) {
	w, g := newTestWirer(t)

	// A pre-existing same-named object, even an empty one, wins.
	existing := &Object{Name: "AdsManager"}
	g.Add(existing)

	got := w.EnsureManager("AdsManager", "AdsManager")
	assert.Same(t, existing, got)
	assert.Empty(t, got.Components, "found object is returned untouched")
	assert.Len(t, g.Objects(), 1)
}

func TestEnsureManager_UnresolvableComponent(t *testing.T) {
	w, g := newTestWirer(t)

	o := w.EnsureManager("MysteryManager", "NotRegistered")
	assert.Empty(t, o.Components, "bare object is created when the type is unknown")
	assert.Len(t, g.Objects(), 1)

	// Re-ensuring after the type registered does not repair; the object
	// already exists by name.
	again := w.EnsureManager("MysteryManager", "NotRegistered")
	assert.Same(t, o, again)
}
