// Package scene models the mutable scene graph: named root-level objects,
// either visual markers or managers carrying a behavior component.
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/gamekit-dev/gamekit/internal/project"
)

// UndoFile is the logical path of the undo journal.
const UndoFile = project.MetaDir + "/undo.yaml"

// Component is a behavior attached to a scene object, resolved by type name.
type Component struct {
	Type       string `yaml:"type"`
	Properties any    `yaml:"properties,omitempty"`
}

// Object is a named entity at the scene root.
type Object struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Marker     bool        `yaml:"marker,omitempty"`
	Components []Component `yaml:"components,omitempty"`
}

// sceneFile is the on-disk scene document.
type sceneFile struct {
	Objects []*Object `yaml:"objects"`
}

// undoEntry records one scene mutation for the undo journal.
type undoEntry struct {
	Op     string `yaml:"op"`
	Object string `yaml:"object"`
	Scene  string `yaml:"scene"`
	At     string `yaml:"at"`
}

type undoFile struct {
	Entries []undoEntry `yaml:"entries"`
}

// Graph is an in-memory scene graph bound to a scene file. Mutations set the
// dirty flag; Save is a no-op on a clean graph.
type Graph struct {
	proj    *project.Project
	logical string
	objects []*Object
	dirty   bool
	undo    []undoEntry
}

// Load reads the scene at the logical path. A missing scene file yields an
// empty graph; it is created on first Save.
func Load(proj *project.Project, logical string) (*Graph, error) {
	g := &Graph{proj: proj, logical: logical}

	data, err := os.ReadFile(proj.Resolve(logical))
	if err != nil {
		if os.IsNotExist(err) {
			return g, nil
		}
		return nil, fmt.Errorf("reading scene %s: %w", logical, err)
	}

	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", logical, err)
	}
	g.objects = f.Objects
	return g, nil
}

// Path returns the scene's logical path.
func (g *Graph) Path() string {
	return g.logical
}

// Objects returns the root-level objects in scene order.
func (g *Graph) Objects() []*Object {
	return g.objects
}

// Find returns the first root object with the given name.
func (g *Graph) Find(name string) (*Object, bool) {
	for _, o := range g.objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// Add appends a new root object, registers the creation with the undo
// journal, and marks the scene dirty.
func (g *Graph) Add(o *Object) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	g.objects = append(g.objects, o)
	g.registerUndo("create-object", o.Name)
	g.dirty = true
}

// Dirty reports whether the graph has unsaved mutations.
func (g *Graph) Dirty() bool {
	return g.dirty
}

// Save writes the scene file and appends pending undo entries. A clean
// graph is a no-op.
func (g *Graph) Save() error {
	if !g.dirty {
		return nil
	}

	data, err := yaml.Marshal(&sceneFile{Objects: g.objects})
	if err != nil {
		return fmt.Errorf("marshaling scene %s: %w", g.logical, err)
	}

	abs := g.proj.Resolve(g.logical)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("creating scene directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("writing scene %s: %w", g.logical, err)
	}

	if err := g.flushUndo(); err != nil {
		return err
	}

	g.dirty = false
	return nil
}

func (g *Graph) registerUndo(op, object string) {
	g.undo = append(g.undo, undoEntry{
		Op:     op,
		Object: object,
		Scene:  g.logical,
		At:     time.Now().UTC().Format(time.RFC3339),
	})
}

func (g *Graph) flushUndo() error {
	if len(g.undo) == 0 {
		return nil
	}

	var f undoFile
	abs := g.proj.Resolve(UndoFile)
	if data, err := os.ReadFile(abs); err == nil {
		// Best effort; an unreadable journal starts over.
		_ = yaml.Unmarshal(data, &f)
	}
	f.Entries = append(f.Entries, g.undo...)

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling undo journal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("creating undo directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("writing undo journal: %w", err)
	}

	g.undo = nil
	return nil
}
