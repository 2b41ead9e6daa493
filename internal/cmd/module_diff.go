package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamekit-dev/gamekit/internal/catalog"
	gkerrors "github.com/gamekit-dev/gamekit/internal/errors"
	"github.com/gamekit-dev/gamekit/internal/output"
)

// NewModuleDiffCmd creates the module diff command.
func NewModuleDiffCmd() *cobra.Command {
	var noColorFlag bool

	c := &cobra.Command{
		Use:   "diff <module>",
		Short: "Show config asset drift against registered defaults",
		Long: `Show a YAML-aware diff between a module's on-disk config asset and the
defaults its type registers. Useful for reviewing what an environment
switcher or a manual edit changed. The installer itself never reconciles
drift; this report is read-only.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runModuleDiff(args[0], !noColorFlag)
		},
	}

	c.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored diff output")

	return c
}

func runModuleDiff(name string, useColor bool) error {
	m, err := catalog.Get(name)
	if err != nil {
		return &gkerrors.ExitError{
			Code: gkerrors.ExitValidationError,
			Err:  gkerrors.Wrap(gkerrors.ErrValidation, err.Error()),
		}
	}

	if m.Asset == nil {
		output.Info("module has no config asset", "module", name)
		return nil
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	if !eng.Project().FileExists(m.Asset.Path) {
		return &gkerrors.ExitError{
			Code: gkerrors.ExitNotFound,
			Err: gkerrors.NewNotFoundError(
				fmt.Sprintf("config asset for %s does not exist", name),
				m.Asset.Path,
				fmt.Sprintf("Run 'gamekit module install %s' first.", name),
			),
		}
	}

	report, err := eng.Store().DiffDefaults(m.Asset.Path, useColor && output.IsTTY())
	if err != nil {
		return err
	}

	if report == "" {
		output.Println(output.FormatCheckmark(fmt.Sprintf("%s matches registered defaults", m.Asset.Path)))
		return nil
	}

	output.Println(output.StyleNoun.Render(m.Asset.Path))
	output.Print(report)
	return nil
}
