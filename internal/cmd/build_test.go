package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gkerrors "github.com/gamekit-dev/gamekit/internal/errors"
)

func TestBuild_MissingConfig(t *testing.T) {
	err := runCLI(t, "build", "-p", initProject(t))
	require.Error(t, err)
	assert.Equal(t, gkerrors.ExitNotFound, gkerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "gamekit module install build")
}

func TestBuild(t *testing.T) {
	dir := initProject(t)
	require.NoError(t, runCLI(t, "module", "install", "build", "-p", dir))

	require.NoError(t, runCLI(t, "build", "-p", dir))
}

func TestBuild_TargetFilter(t *testing.T) {
	dir := initProject(t)
	require.NoError(t, runCLI(t, "module", "install", "build", "-p", dir))

	require.NoError(t, runCLI(t, "build", "-t", "android", "-p", dir))
}

func TestBuild_UnknownTarget(t *testing.T) {
	dir := initProject(t)
	require.NoError(t, runCLI(t, "module", "install", "build", "-p", dir))

	err := runCLI(t, "build", "-t", "gameboy", "-p", dir)
	require.Error(t, err)
	assert.Equal(t, gkerrors.ExitValidationError, gkerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "gameboy")
}

func TestBuild_ReadsEditedConfig(t *testing.T) {
	dir := initProject(t)
	require.NoError(t, runCLI(t, "module", "install", "build", "-p", dir))

	asset := filepath.Join(dir, "assets", "config", "BuildConfig.yaml")
	data, err := os.ReadFile(asset)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "com.example.game", "com.studio.spaceminer", 1)
	require.NotEqual(t, string(data), edited)
	require.NoError(t, os.WriteFile(asset, []byte(edited), 0o644))

	// The edited bundle id must be accepted, not reverted.
	require.NoError(t, runCLI(t, "build", "-p", dir))

	after, err := os.ReadFile(asset)
	require.NoError(t, err)
	assert.Equal(t, edited, string(after), "build never writes the config asset")
}
