package scene

import (
	"github.com/gamekit-dev/gamekit/internal/output"
	"github.com/gamekit-dev/gamekit/internal/typereg"
)

// Wirer ensures marker and manager objects exist in a scene graph. Both
// operations are idempotent by name: an existing same-named root object is
// returned as-is regardless of its contents.
type Wirer struct {
	graph    *Graph
	resolver *typereg.Resolver
}

// NewWirer creates a wirer over the given graph.
func NewWirer(graph *Graph, resolver *typereg.Resolver) *Wirer {
	return &Wirer{graph: graph, resolver: resolver}
}

// MarkerName derives the display name for a marker label.
func MarkerName(label string) string {
	return "——— " + label + " ———"
}

// EnsureMarker ensures a visual separator object with the derived name
// exists at the scene root and returns it.
func (w *Wirer) EnsureMarker(label string) *Object {
	name := MarkerName(label)
	if existing, ok := w.graph.Find(name); ok {
		return existing
	}

	o := &Object{Name: name, Marker: true}
	w.graph.Add(o)
	output.Debug("created scene marker", "name", name, "scene", w.graph.Path())
	return o
}

// EnsureManager ensures a manager object named objectName exists at the
// scene root and returns it.
//
// A found object is returned untouched: component attachment is not
// verified or repaired on it. When the object is created, the component
// attach is one-shot best-effort: an unresolvable component type still
// produces the bare object plus a warning, and re-triggering the install
// after the type is registered is the fix.
func (w *Wirer) EnsureManager(objectName, componentTypeName string) *Object {
	if existing, ok := w.graph.Find(objectName); ok {
		output.Debug("scene object exists", "name", objectName)
		return existing
	}

	o := &Object{Name: objectName}

	if t, ok := w.resolver.Resolve(componentTypeName); ok {
		o.Components = append(o.Components, Component{
			Type:       t.Name,
			Properties: t.New(),
		})
	} else {
		output.Warn("component type not resolvable, created bare object",
			"name", objectName, "component", componentTypeName,
			"hint", "re-run install once the type is registered")
	}

	w.graph.Add(o)
	output.Debug("created scene manager", "name", objectName, "scene", w.graph.Path())
	return o
}
