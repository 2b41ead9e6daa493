package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamekit-dev/gamekit/internal/catalog"
	gkerrors "github.com/gamekit-dev/gamekit/internal/errors"
	"github.com/gamekit-dev/gamekit/internal/output"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	var targetFlag string

	c := &cobra.Command{
		Use:   "build",
		Short: "Assemble the build plan from the build config asset",
		Long: `Assemble the build plan for the project.

Reads the BuildConfig asset created by the build module. The plan is printed;
invoking the platform packaging backend is out of scope for this tool.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(targetFlag)
		},
	}

	c.Flags().StringVarP(&targetFlag, "target", "t", "", "Build only the named target")

	return c
}

func runBuild(target string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	// Missing prerequisite: report cleanly, no side effects.
	if !eng.Project().FileExists(catalog.BuildConfigPath) {
		return &gkerrors.ExitError{
			Code: gkerrors.ExitNotFound,
			Err: gkerrors.NewNotFoundError(
				"build config asset not found",
				catalog.BuildConfigPath,
				"Run 'gamekit module install build' to create it.",
			),
		}
	}

	var cfg catalog.BuildConfig
	if err := eng.Store().LoadSpec(catalog.BuildConfigPath, &cfg); err != nil {
		return err
	}

	targets := cfg.Targets
	if target != "" {
		found := false
		for _, t := range cfg.Targets {
			if t == target {
				found = true
				break
			}
		}
		if !found {
			return &gkerrors.ExitError{
				Code: gkerrors.ExitValidationError,
				Err: gkerrors.NewValidationError(
					fmt.Sprintf("target %q not in build config targets %v", target, cfg.Targets),
					catalog.BuildConfigPath,
					"Add the target to the BuildConfig asset or pick a configured one.",
				),
			}
		}
		targets = []string{target}
	}

	output.Println(output.StyleSummary.Render(
		fmt.Sprintf("Build plan for %s %s (%d)", cfg.BundleID, cfg.Version, cfg.BuildNumber)))

	t := output.NewTable("TARGET", "SCENES")
	for _, tgt := range targets {
		t.Row(tgt, fmt.Sprintf("%d scene(s)", len(cfg.Scenes)))
	}
	output.Println(t.String())

	for _, tgt := range targets {
		output.Info("would package", "target", tgt, "bundle", cfg.BundleID)
	}
	return nil
}
