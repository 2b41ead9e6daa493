package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for the gamekit CLI.
type Paths struct {
	// ConfigFile is the path to the config file (~/.gamekit/config.yaml).
	ConfigFile string

	// HomeDir is the gamekit home directory (~/.gamekit).
	HomeDir string
}

// DefaultPaths returns the default paths for gamekit.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	gkHome := filepath.Join(homeDir, ".gamekit")

	return &Paths{
		ConfigFile: filepath.Join(gkHome, "config.yaml"),
		HomeDir:    gkHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If GAMEKIT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("GAMEKIT_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username form is not supported, return as-is
	return path, nil
}
