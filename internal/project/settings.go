package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// errNotAProject mirrors the CLI-level sentinel without importing it; the
// cmd layer wraps Open failures into the user-facing error.
var errNotAProject = errors.New("not a gamekit project")

// IsNotAProject reports whether err indicates a missing project workspace.
func IsNotAProject(err error) bool {
	return errors.Is(err, errNotAProject)
}

// Settings is the project's opaque key-value settings store, backed by the
// gamekit.yaml file at the project root. The installer treats it as a flat
// store; dotted keys map to nested YAML.
type Settings struct {
	v    *viper.Viper
	path string
}

// LoadSettings loads the settings store from the given file path.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading project settings: %w", err)
		}
	}

	return &Settings{v: v, path: path}, nil
}

// GetString returns the string value for key, or "" if unset.
func (s *Settings) GetString(key string) string {
	return s.v.GetString(key)
}

// IsSet reports whether key has a value.
func (s *Settings) IsSet(key string) bool {
	return s.v.IsSet(key)
}

// Set stores a value for key in memory. Save persists it.
func (s *Settings) Set(key string, value any) {
	s.v.Set(key, value)
}

// SetDefault stores a value only if the key is currently unset. This is the
// settings analog of write-if-absent: a user's edited value is never
// clobbered by a re-install.
func (s *Settings) SetDefault(key string, value any) bool {
	if s.v.IsSet(key) {
		return false
	}
	s.v.Set(key, value)
	return true
}

// Save writes the settings file back to disk.
func (s *Settings) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing project settings: %w", err)
	}
	return nil
}
