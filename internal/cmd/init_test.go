package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gkerrors "github.com/gamekit-dev/gamekit/internal/errors"
)

func TestInit_CreatesWorkspace(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runCLI(t, "init", "-p", dir, "--name", "MyGame", "--module", "example.com/mygame"))

	assert.FileExists(t, filepath.Join(dir, "gamekit.yaml"))
	assert.DirExists(t, filepath.Join(dir, "assets", "config"))
	assert.DirExists(t, filepath.Join(dir, "assets", "scenes"))
	assert.DirExists(t, filepath.Join(dir, "modules"))
	assert.DirExists(t, filepath.Join(dir, ".gamekit"))

	settings, err := os.ReadFile(filepath.Join(dir, "gamekit.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(settings), "MyGame")
	assert.Contains(t, string(settings), "example.com/mygame")
}

func TestInit_RefusesExistingProject(t *testing.T) {
	dir := initProject(t)

	err := runCLI(t, "init", "-p", dir, "--name", "again")
	require.Error(t, err)
	assert.Equal(t, gkerrors.ExitValidationError, gkerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_RejectsPositionalArgs(t *testing.T) {
	err := runCLI(t, "init", "unexpected")
	assert.Error(t, err)
}
