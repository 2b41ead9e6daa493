// Package project models the target game project workspace: the project
// root, logical-path resolution, and the project settings store.
//
// A logical path is a stable, project-relative, slash-separated string such
// as "modules/ads" or "assets/config/AdsConfig.yaml". The same module always
// targets the same logical paths, which is what makes existence probes a
// sufficient install-state signal.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SettingsFile is the per-project settings file at the project root.
const SettingsFile = "gamekit.yaml"

// MetaDir is the hidden directory for tool-managed state (asset index,
// undo journal).
const MetaDir = ".gamekit"

// Project represents an opened game project workspace.
type Project struct {
	// Root is the absolute path to the project root directory.
	Root string

	settings *Settings
}

// Open opens the project rooted at dir. dir may be relative; it is resolved
// to an absolute path. Returns ErrProject if dir does not contain a
// gamekit.yaml settings file.
func Open(dir string) (*Project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	p := &Project{Root: root}
	if !p.FileExists(SettingsFile) {
		return nil, fmt.Errorf("no %s in %s: %w", SettingsFile, root, errNotAProject)
	}

	settings, err := LoadSettings(p.Resolve(SettingsFile))
	if err != nil {
		return nil, err
	}
	p.settings = settings

	return p, nil
}

// Resolve maps a logical project-relative path to an absolute filesystem
// path. Pure function of the project root and the logical path; malformed
// paths are the caller's responsibility.
func (p *Project) Resolve(logical string) string {
	return filepath.Join(p.Root, filepath.FromSlash(logical))
}

// Rel maps an absolute path under the project root back to a logical path.
func (p *Project) Rel(abs string) (string, error) {
	rel, err := filepath.Rel(p.Root, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// FileExists reports whether a regular file exists at the logical path.
func (p *Project) FileExists(logical string) bool {
	info, err := os.Stat(p.Resolve(logical))
	return err == nil && info.Mode().IsRegular()
}

// FolderExists reports whether a directory exists at the logical path.
func (p *Project) FolderExists(logical string) bool {
	info, err := os.Stat(p.Resolve(logical))
	return err == nil && info.IsDir()
}

// Settings returns the project settings store.
func (p *Project) Settings() *Settings {
	return p.settings
}

// Name returns the project name from settings, falling back to the root
// directory name.
func (p *Project) Name() string {
	if name := p.settings.GetString("project.name"); name != "" {
		return name
	}
	return filepath.Base(p.Root)
}

// ModulePath returns the Go module path of the host game project, used when
// rendering generated source. Falls back to a placeholder path derived from
// the project name.
func (p *Project) ModulePath() string {
	if mod := p.settings.GetString("project.module"); mod != "" {
		return mod
	}
	return "example.com/" + strings.ToLower(p.Name())
}
