// Package catalog defines the fixed set of installable modules and their
// descriptors. Descriptors are immutable: constructed once at init, consulted
// on every dashboard render and install.
package catalog

import (
	"fmt"
	"path"
	"sort"

	"github.com/gamekit-dev/gamekit/internal/project"
	"github.com/gamekit-dev/gamekit/internal/scaffold"
)

// AssetSpec names the config asset a module owns.
type AssetSpec struct {
	// Type is the registered config type name.
	Type string

	// Path is the logical path of the persisted asset.
	Path string
}

// SceneSpec names a scene object a module ensures.
type SceneSpec struct {
	// Marker, when true, makes this a visual separator; Label is its text.
	Marker bool
	Label  string

	// Object and Component name a manager object and its behavior type.
	Object    string
	Component string
}

// Env is the installation environment handed to a module's install
// procedure. The immediate phase uses Project and Writer directly; the
// Defer* callbacks schedule the post-immediate phase work with the
// orchestrator's queue.
type Env struct {
	Project *project.Project
	Writer  *scaffold.Writer
	Data    TemplateData

	DeferAsset   func(typeName, logical string)
	DeferMarker  func(label string)
	DeferManager func(objectName, componentType string)
}

// Module is an immutable descriptor of one installable module.
type Module struct {
	// Name is the stable module identifier (CLI argument).
	Name string

	// Title is the human-readable name for listings.
	Title string

	// Description explains what the module scaffolds.
	Description string

	// SourceDir is the logical folder generated source lives in.
	SourceDir string

	// TargetFiles are the logical paths of generated files, relative to
	// SourceDir. Stable across runs; install state derives from them.
	TargetFiles []string

	// Asset is the module's config asset, if any.
	Asset *AssetSpec

	// Scene lists the scene objects the module ensures, if any.
	Scene []SceneSpec

	// Extra is optional additional immediate-phase work (settings writes).
	Extra func(env *Env) error
}

// PrimaryFile is the logical path whose existence signals "installed".
// IsInstalled is a cheap probe, not a deep verification; a module can report
// installed while its scene wiring is still pending.
func (m *Module) PrimaryFile() string {
	return path.Join(m.SourceDir, m.TargetFiles[0])
}

// Installed reports whether the module's primary generated file exists.
func (m *Module) Installed(proj *project.Project) bool {
	return proj.FileExists(m.PrimaryFile())
}

// Install runs the module's install procedure against env: ensure folder,
// write code templates, then defer asset creation and scene wiring. Every
// sub-step is independently idempotent, so re-invoking on an installed
// module performs only the missing subset of work.
func (m *Module) Install(env *Env) error {
	if err := env.Writer.EnsureFolder(m.SourceDir); err != nil {
		return err
	}

	files, err := Render(m.Name, env.Data)
	if err != nil {
		return fmt.Errorf("rendering %s templates: %w", m.Name, err)
	}
	for _, f := range files {
		if _, err := env.Writer.WriteFile(path.Join(m.SourceDir, f.Path), f.Content); err != nil {
			return err
		}
	}

	if m.Extra != nil {
		if err := m.Extra(env); err != nil {
			return err
		}
	}

	if m.Asset != nil {
		env.DeferAsset(m.Asset.Type, m.Asset.Path)
	}
	for _, s := range m.Scene {
		if s.Marker {
			env.DeferMarker(s.Label)
		} else {
			env.DeferManager(s.Object, s.Component)
		}
	}

	return nil
}

// modules is the internal registry, keyed by name.
var modules = make(map[string]*Module)

// register adds a module descriptor at init time.
func register(m *Module) {
	if _, exists := modules[m.Name]; exists {
		panic(fmt.Sprintf("catalog: duplicate module %q", m.Name))
	}
	modules[m.Name] = m
}

// Get returns a module by name.
func Get(name string) (*Module, error) {
	m, ok := modules[name]
	if !ok {
		return nil, fmt.Errorf("unknown module %q; valid modules: %v", name, Names())
	}
	return m, nil
}

// List returns all modules sorted by name.
func List() []*Module {
	out := make([]*Module, 0, len(modules))
	for _, m := range modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns all module names in sorted order.
func Names() []string {
	names := make([]string, 0, len(modules))
	for n := range modules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
