package installer

import (
	"path"

	"github.com/gamekit-dev/gamekit/internal/catalog"
	"github.com/gamekit-dev/gamekit/internal/scene"
)

// ArtifactStatus describes one expected artifact of a module.
type ArtifactStatus struct {
	// Kind is "file", "asset", "marker", or "manager".
	Kind string

	// Path is the logical path or scene object name.
	Path string

	// Present reports whether the artifact currently exists.
	Present bool
}

// ModuleStatus is the per-module artifact report for the dashboard.
type ModuleStatus struct {
	Name        string
	Title       string
	Description string
	Installed   bool
	Artifacts   []ArtifactStatus
}

// Complete reports whether every expected artifact is present.
func (s ModuleStatus) Complete() bool {
	for _, a := range s.Artifacts {
		if !a.Present {
			return false
		}
	}
	return true
}

// Status re-derives the named module's artifact state from filesystem and
// scene probes.
func (e *Engine) Status(name string) (ModuleStatus, error) {
	m, err := catalog.Get(name)
	if err != nil {
		return ModuleStatus{}, err
	}

	graph, err := scene.Load(e.proj, e.sceneFile)
	if err != nil {
		return ModuleStatus{}, err
	}
	return e.status(m, graph), nil
}

// StatusAll reports every catalog module, loading the scene once.
func (e *Engine) StatusAll() ([]ModuleStatus, error) {
	graph, err := scene.Load(e.proj, e.sceneFile)
	if err != nil {
		return nil, err
	}

	mods := catalog.List()
	out := make([]ModuleStatus, 0, len(mods))
	for _, m := range mods {
		out = append(out, e.status(m, graph))
	}
	return out, nil
}

func (e *Engine) status(m *catalog.Module, graph *scene.Graph) ModuleStatus {
	s := ModuleStatus{
		Name:        m.Name,
		Title:       m.Title,
		Description: m.Description,
		Installed:   m.Installed(e.proj),
	}

	for _, f := range m.TargetFiles {
		logical := path.Join(m.SourceDir, f)
		s.Artifacts = append(s.Artifacts, ArtifactStatus{
			Kind:    "file",
			Path:    logical,
			Present: e.proj.FileExists(logical),
		})
	}

	if m.Asset != nil {
		s.Artifacts = append(s.Artifacts, ArtifactStatus{
			Kind:    "asset",
			Path:    m.Asset.Path,
			Present: e.proj.FileExists(m.Asset.Path),
		})
	}

	for _, spec := range m.Scene {
		if spec.Marker {
			_, present := graph.Find(scene.MarkerName(spec.Label))
			s.Artifacts = append(s.Artifacts, ArtifactStatus{
				Kind:    "marker",
				Path:    spec.Label,
				Present: present,
			})
		} else {
			_, present := graph.Find(spec.Object)
			s.Artifacts = append(s.Artifacts, ArtifactStatus{
				Kind:    "manager",
				Path:    spec.Object,
				Present: present,
			})
		}
	}

	return s
}
