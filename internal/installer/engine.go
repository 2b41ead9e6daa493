// Package installer orchestrates module installation: the synchronous
// immediate phase (folders, generated files) and the deferred phase (config
// assets, scene wiring) drained at the next idle point.
package installer

import (
	"fmt"

	"github.com/gamekit-dev/gamekit/internal/assetdb"
	"github.com/gamekit-dev/gamekit/internal/catalog"
	"github.com/gamekit-dev/gamekit/internal/deferred"
	"github.com/gamekit-dev/gamekit/internal/output"
	"github.com/gamekit-dev/gamekit/internal/project"
	"github.com/gamekit-dev/gamekit/internal/scaffold"
	"github.com/gamekit-dev/gamekit/internal/scene"
	"github.com/gamekit-dev/gamekit/internal/typereg"
)

// Engine installs modules into one project. Install state is never stored;
// it is re-derived from artifact existence on every probe, so a module whose
// generated file was deleted is correctly re-scaffolded on the next install.
type Engine struct {
	proj      *project.Project
	sceneFile string

	index    *assetdb.Index
	store    *assetdb.Store
	resolver *typereg.Resolver
	writer   *scaffold.Writer
	queue    *deferred.Queue

	// graph is loaded lazily by the first deferred scene op of a drain and
	// saved at the end of that drain.
	graph *scene.Graph
}

// New creates an engine over the given project. sceneFile is the logical
// path of the active scene.
func New(proj *project.Project, sceneFile string) *Engine {
	index := assetdb.NewIndex(proj)
	resolver := typereg.DefaultResolver()

	return &Engine{
		proj:      proj,
		sceneFile: sceneFile,
		index:     index,
		store:     assetdb.NewStore(proj, index, resolver),
		resolver:  resolver,
		writer:    scaffold.NewWriter(proj, index),
		queue:     deferred.NewQueue(),
	}
}

// Project returns the engine's project.
func (e *Engine) Project() *project.Project {
	return e.proj
}

// Store returns the engine's asset store.
func (e *Engine) Store() *assetdb.Store {
	return e.store
}

// Pending returns the number of queued deferred operations.
func (e *Engine) Pending() int {
	return e.queue.Len()
}

// Install runs the named module's immediate phase and enqueues its deferred
// phase. Safe to re-invoke on an installed module: every sub-step performs
// only missing work.
func (e *Engine) Install(name string) error {
	m, err := catalog.Get(name)
	if err != nil {
		return err
	}

	output.Info("installing module", "module", m.Name)
	return m.Install(e.env())
}

// InstallAll installs every catalog module.
func (e *Engine) InstallAll() error {
	for _, m := range catalog.List() {
		if err := e.Install(m.Name); err != nil {
			return fmt.Errorf("installing %s: %w", m.Name, err)
		}
	}
	return nil
}

// Installed reports whether the named module's primary generated file
// exists. This is a cheap existence probe, not a deep verification of every
// artifact.
func (e *Engine) Installed(name string) (bool, error) {
	m, err := catalog.Get(name)
	if err != nil {
		return false, err
	}
	return m.Installed(e.proj), nil
}

// Drain runs the queued deferred operations in FIFO order — the idle point —
// then saves the scene if any wiring dirtied it. Safe to call with an empty
// queue and safe to call repeatedly.
func (e *Engine) Drain() error {
	err := e.queue.Drain()

	if e.graph != nil {
		if saveErr := e.graph.Save(); saveErr != nil && err == nil {
			err = saveErr
		}
		// Drop the graph; the next drain reloads current scene state.
		e.graph = nil
	}
	return err
}

// env builds the install environment for the immediate phase.
func (e *Engine) env() *catalog.Env {
	return &catalog.Env{
		Project: e.proj,
		Writer:  e.writer,
		Data: catalog.TemplateData{
			ProjectName: e.proj.Name(),
			ModulePath:  e.proj.ModulePath(),
		},
		DeferAsset: func(typeName, logical string) {
			e.queue.Enqueue("create asset "+logical, func() error {
				_, err := e.store.CreateConfigAsset(typeName, logical)
				return err
			})
		},
		DeferMarker: func(label string) {
			e.queue.Enqueue("ensure marker "+label, func() error {
				w, err := e.wirer()
				if err != nil {
					return err
				}
				w.EnsureMarker(label)
				return nil
			})
		},
		DeferManager: func(objectName, componentType string) {
			e.queue.Enqueue("ensure manager "+objectName, func() error {
				w, err := e.wirer()
				if err != nil {
					return err
				}
				w.EnsureManager(objectName, componentType)
				return nil
			})
		},
	}
}

// wirer loads the scene graph on first use within a drain.
func (e *Engine) wirer() (*scene.Wirer, error) {
	if e.graph == nil {
		g, err := scene.Load(e.proj, e.sceneFile)
		if err != nil {
			return nil, err
		}
		e.graph = g
	}
	return scene.NewWirer(e.graph, e.resolver), nil
}
