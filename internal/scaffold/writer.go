// Package scaffold provides the idempotent filesystem primitives the
// installer is built on: folder creation and write-if-absent file writes.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gamekit-dev/gamekit/internal/output"
	"github.com/gamekit-dev/gamekit/internal/project"
)

// Refresher receives notice that a folder's contents may have changed and
// should be re-indexed. The asset index implements this.
type Refresher interface {
	Refresh(logicalDir string) error
}

// Writer creates folders and writes generated files into a project.
// Every operation is idempotent: re-running an install performs only the
// missing subset of work and never touches existing content.
type Writer struct {
	proj  *project.Project
	index Refresher
}

// NewWriter creates a writer for the given project. index may be nil when no
// asset index needs refreshing (tests).
func NewWriter(proj *project.Project, index Refresher) *Writer {
	return &Writer{proj: proj, index: index}
}

// EnsureFolder creates the folder at the logical path, including missing
// ancestors. Already present is a silent no-op. A newly created folder is
// registered with the asset index so files written into it are visible
// without a full rescan.
func (w *Writer) EnsureFolder(logical string) error {
	if w.proj.FolderExists(logical) {
		return nil
	}

	abs := w.proj.Resolve(logical)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("creating folder %s: %w", logical, err)
	}
	output.Debug("created folder", "path", logical)

	if w.index != nil {
		if err := w.index.Refresh(logical); err != nil {
			return fmt.Errorf("refreshing index for %s: %w", logical, err)
		}
	}
	return nil
}

// WriteFile writes content verbatim to the logical path only if no file
// exists there. An existing file is a deliberate no-op: content is never
// diffed or overwritten, so post-install edits survive repeated installs.
// Returns true if the file was written.
func (w *Writer) WriteFile(logical string, content []byte) (bool, error) {
	if w.proj.FileExists(logical) {
		output.Debug("file exists, skipping", "path", logical)
		return false, nil
	}

	abs := w.proj.Resolve(logical)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return false, fmt.Errorf("creating parent of %s: %w", logical, err)
	}
	if err := os.WriteFile(abs, content, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", logical, err)
	}
	output.Debug("wrote file", "path", logical, "bytes", len(content))
	return true, nil
}

// FileExists reports whether a file exists at the logical path.
func (w *Writer) FileExists(logical string) bool {
	return w.proj.FileExists(logical)
}

// FolderExists reports whether a folder exists at the logical path.
func (w *Writer) FolderExists(logical string) bool {
	return w.proj.FolderExists(logical)
}
