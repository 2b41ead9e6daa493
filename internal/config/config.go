// Package config provides configuration loading and management for the
// gamekit CLI. Tool-level configuration lives at ~/.gamekit/config.yaml and
// controls defaults shared across projects; per-project settings live in the
// project's own gamekit.yaml (see internal/project).
package config

// Config is the tool-level configuration.
type Config struct {
	// ProjectDir is the default project directory when --project is omitted.
	// Empty means the current working directory.
	ProjectDir string `mapstructure:"projectDir"`

	// SceneFile is the logical path of the active scene within a project.
	SceneFile string `mapstructure:"sceneFile"`

	// Log contains logging preferences.
	Log LogSettings `mapstructure:"log"`
}

// LogSettings contains logging preferences.
type LogSettings struct {
	// Timestamps toggles timestamps in log output. Nil means the default.
	Timestamps *bool `mapstructure:"timestamps"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		ProjectDir: "",
		SceneFile:  "assets/scenes/main.scene.yaml",
	}
}
