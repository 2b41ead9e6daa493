// Package assetdb persists configuration assets and maintains the project's
// asset index.
package assetdb

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gamekit-dev/gamekit/internal/output"
	"github.com/gamekit-dev/gamekit/internal/project"
)

// IndexFile is the logical path of the asset index.
const IndexFile = project.MetaDir + "/index.yaml"

// indexEntry is one indexed logical path.
type indexEntry struct {
	Path    string `yaml:"path"`
	GUID    string `yaml:"guid,omitempty"`
	Indexed string `yaml:"indexed"`
}

type indexFile struct {
	Entries []indexEntry `yaml:"entries"`
}

// Index tracks the logical paths the tool knows about, so a freshly created
// folder's contents are visible without a full project rescan. It is loaded
// lazily and flushed after every mutation.
type Index struct {
	proj    *project.Project
	entries map[string]indexEntry
	loaded  bool
}

// NewIndex creates an index over the given project.
func NewIndex(proj *project.Project) *Index {
	return &Index{
		proj:    proj,
		entries: make(map[string]indexEntry),
	}
}

// Refresh rescans the folder at the logical path and records its current
// files. Unknown folders are fine; a folder with no files indexes nothing.
func (ix *Index) Refresh(logicalDir string) error {
	if err := ix.load(); err != nil {
		return err
	}

	abs := ix.proj.Resolve(logicalDir)
	entries, err := os.ReadDir(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("scanning %s: %w", logicalDir, err)
	}

	ix.touch(logicalDir, "")
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ix.touch(path.Join(logicalDir, e.Name()), "")
	}

	return ix.flush()
}

// Record adds a single logical path with its GUID to the index and flushes.
func (ix *Index) Record(logical, guid string) error {
	if err := ix.load(); err != nil {
		return err
	}
	ix.touch(logical, guid)
	return ix.flush()
}

// Contains reports whether the logical path is indexed.
func (ix *Index) Contains(logical string) bool {
	if err := ix.load(); err != nil {
		return false
	}
	_, ok := ix.entries[logical]
	return ok
}

// Paths returns all indexed logical paths in sorted order.
func (ix *Index) Paths() []string {
	if err := ix.load(); err != nil {
		return nil
	}
	paths := make([]string, 0, len(ix.entries))
	for p := range ix.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (ix *Index) touch(logical, guid string) {
	prev, ok := ix.entries[logical]
	if ok && guid == "" {
		guid = prev.GUID
	}
	ix.entries[logical] = indexEntry{
		Path:    logical,
		GUID:    guid,
		Indexed: time.Now().UTC().Format(time.RFC3339),
	}
}

func (ix *Index) load() error {
	if ix.loaded {
		return nil
	}

	data, err := os.ReadFile(ix.proj.Resolve(IndexFile))
	if err != nil {
		if os.IsNotExist(err) {
			ix.loaded = true
			return nil
		}
		return fmt.Errorf("reading asset index: %w", err)
	}

	var f indexFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		// A corrupt index is rebuilt rather than fatal; it is derived state.
		output.Warn("asset index unreadable, rebuilding", "error", err)
		ix.loaded = true
		return nil
	}

	for _, e := range f.Entries {
		ix.entries[e.Path] = e
	}
	ix.loaded = true
	return nil
}

func (ix *Index) flush() error {
	f := indexFile{Entries: make([]indexEntry, 0, len(ix.entries))}
	for _, p := range ix.Paths() {
		f.Entries = append(f.Entries, ix.entries[p])
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling asset index: %w", err)
	}

	abs := ix.proj.Resolve(IndexFile)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("writing asset index: %w", err)
	}
	return nil
}
