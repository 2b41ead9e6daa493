package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.ProjectDir)
	assert.Equal(t, "assets/scenes/main.scene.yaml", cfg.SceneFile)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestLoaderMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().SceneFile, cfg.SceneFile)
}

func TestLoaderReadsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := `projectDir: /games/myproject
sceneFile: assets/scenes/menu.scene.yaml
log:
  timestamps: true
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := NewLoader().Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/games/myproject", cfg.ProjectDir)
	assert.Equal(t, "assets/scenes/menu.scene.yaml", cfg.SceneFile)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("projectDir: /from/file\n"), 0o644))

	t.Setenv("GAMEKIT_PROJECT_DIR", "/from/env")

	cfg, err := NewLoader().Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.ProjectDir)
}

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv("GAMEKIT_CONFIG", "/custom/config.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~", home},
		{"~/.gamekit/config.yaml", filepath.Join(home, ".gamekit", "config.yaml")},
		{"~other/file", "~other/file"},
	}

	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
