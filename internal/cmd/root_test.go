package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args plus an isolated config file, so
// tests never pick up the developer's ~/.gamekit/config.yaml.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "-c", filepath.Join(t.TempDir(), "config.yaml")))
	return root.Execute()
}

// initProject initializes a project workspace in a temp directory and returns
// its path.
func initProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, runCLI(t, "init", "-p", dir, "--name", "testgame"))
	return dir
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "gamekit", root.Use)
	assert.True(t, root.SilenceUsage)

	for _, flag := range []string{"project", "config", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"init", "module", "build", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	err := runCLI(t, "frobnicate")
	assert.Error(t, err)
}
