package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// InitOptions configures workspace initialization.
type InitOptions struct {
	// Name is the project name written to project.name.
	Name string

	// Module is the Go module path of the host game, written to
	// project.module.
	Module string
}

// Init creates a new project workspace at dir and returns the opened
// project. It refuses to initialize a directory that already contains a
// settings file.
func Init(dir string, opts InitOptions) (*Project, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	probe := &Project{Root: root}

	if probe.FileExists(SettingsFile) {
		return nil, fmt.Errorf("%s already exists in %s", SettingsFile, root)
	}

	settings, err := LoadSettings(probe.Resolve(SettingsFile))
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(root)
	}
	settings.Set("project.name", name)
	if opts.Module != "" {
		settings.Set("project.module", opts.Module)
	}

	if err := settings.Save(); err != nil {
		return nil, err
	}

	for _, d := range []string{"assets", "assets/config", "assets/scenes", "modules", MetaDir} {
		if err := os.MkdirAll(probe.Resolve(d), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", d, err)
		}
	}

	return Open(dir)
}
