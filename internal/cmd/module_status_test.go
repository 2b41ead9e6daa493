package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gkerrors "github.com/gamekit-dev/gamekit/internal/errors"
)

func TestModuleStatus(t *testing.T) {
	dir := initProject(t)

	require.NoError(t, runCLI(t, "module", "status", "-p", dir))

	require.NoError(t, runCLI(t, "module", "install", "ads", "-p", dir))
	require.NoError(t, runCLI(t, "module", "status", "ads", "-p", dir))
}

func TestModuleStatus_UnknownModule(t *testing.T) {
	err := runCLI(t, "module", "status", "nope", "-p", initProject(t))
	assert.Error(t, err)
}

func TestModuleStatus_NotAProject(t *testing.T) {
	err := runCLI(t, "module", "status", "-p", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, gkerrors.ExitNotAProject, gkerrors.ExitCodeFromError(err))
}

func TestModuleList(t *testing.T) {
	require.NoError(t, runCLI(t, "module", "list", "-p", initProject(t)))
}

func TestModuleAlias(t *testing.T) {
	require.NoError(t, runCLI(t, "mod", "list", "-p", initProject(t)))
}

func TestVersionCmd(t *testing.T) {
	require.NoError(t, runCLI(t, "version"))
}
