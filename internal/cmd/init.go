package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gkerrors "github.com/gamekit-dev/gamekit/internal/errors"
	"github.com/gamekit-dev/gamekit/internal/output"
	"github.com/gamekit-dev/gamekit/internal/project"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	var nameFlag string
	var moduleFlag string

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a project workspace",
		Long: `Create a gamekit project workspace in the target directory.

Writes gamekit.yaml and the standard folder layout (assets/, modules/) so
module installs have a host project.

Examples:
  # Initialize the current directory
  gamekit init --name my-game --module example.com/my-game

  # Initialize another directory
  gamekit -p ./my-game init`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(nameFlag, moduleFlag)
		},
	}

	c.Flags().StringVar(&nameFlag, "name", "", "Project display name (defaults to directory name)")
	c.Flags().StringVar(&moduleFlag, "module", "", "Go module path of the host game")

	return c
}

func runInit(name, module string) error {
	dir := projectDir()

	proj, err := project.Init(dir, project.InitOptions{Name: name, Module: module})
	if err != nil {
		return &gkerrors.ExitError{
			Code: gkerrors.ExitValidationError,
			Err: gkerrors.NewValidationError(
				err.Error(),
				dir,
				"Pick an empty directory or one without a gamekit.yaml.",
			),
		}
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Initialized project '%s' in %s", proj.Name(), proj.Root)))
	return nil
}
