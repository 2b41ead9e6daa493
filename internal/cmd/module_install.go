package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gamekit-dev/gamekit/internal/catalog"
	gkerrors "github.com/gamekit-dev/gamekit/internal/errors"
	"github.com/gamekit-dev/gamekit/internal/output"
)

// NewModuleInstallCmd creates the module install command.
func NewModuleInstallCmd() *cobra.Command {
	var allFlag bool
	var noDeferFlag bool

	c := &cobra.Command{
		Use:   "install [module...]",
		Short: "Install modules into the project",
		Long: `Install one or more modules into the project.

The immediate phase writes folders and generated source; the deferred phase
creates config assets and wires scene objects. Both phases are idempotent:
re-installing performs only the missing subset of work and never overwrites
an existing file, asset, or scene object.

Examples:
  # Install the ads module
  gamekit module install ads

  # Install everything
  gamekit module install --all

  # Immediate phase only; leave the deferred queue undrained
  gamekit module install ads --no-defer`,
		RunE: func(c *cobra.Command, args []string) error {
			return runModuleInstall(args, allFlag, noDeferFlag)
		},
	}

	c.Flags().BoolVar(&allFlag, "all", false, "Install every catalog module")
	c.Flags().BoolVar(&noDeferFlag, "no-defer", false, "Skip draining the deferred phase")

	return c
}

func runModuleInstall(args []string, all, noDefer bool) error {
	if !all && len(args) == 0 {
		return &gkerrors.ExitError{
			Code: gkerrors.ExitValidationError,
			Err: gkerrors.NewValidationError(
				"no modules given",
				"",
				fmt.Sprintf("Name modules to install or pass --all. Valid modules: %s",
					strings.Join(catalog.Names(), ", ")),
			),
		}
	}

	names := args
	if all {
		names = catalog.Names()
	}

	// Unknown names fail before any side effect.
	for _, name := range names {
		if _, err := catalog.Get(name); err != nil {
			return &gkerrors.ExitError{
				Code: gkerrors.ExitValidationError,
				Err: gkerrors.NewValidationError(
					err.Error(),
					"",
					fmt.Sprintf("Valid modules: %s", strings.Join(catalog.Names(), ", ")),
				),
			}
		}
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := eng.Install(name); err != nil {
			return err
		}
	}

	if noDefer {
		output.Info("deferred phase skipped", "pending", eng.Pending())
		return nil
	}

	if err := output.RunWithSpinner(context.Background(), eng.Drain,
		output.WithTitle("Creating assets and wiring scene...")); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Installed %s", strings.Join(names, ", "))))
	return nil
}
