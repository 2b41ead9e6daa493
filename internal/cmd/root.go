// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gamekit-dev/gamekit/internal/config"
	gkerrors "github.com/gamekit-dev/gamekit/internal/errors"
	"github.com/gamekit-dev/gamekit/internal/installer"
	"github.com/gamekit-dev/gamekit/internal/output"
	"github.com/gamekit-dev/gamekit/internal/project"
	"github.com/gamekit-dev/gamekit/internal/version"
)

var (
	// Global flags
	projectFlag    string
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded tool configuration (set during PersistentPreRunE)
	toolConfig *config.Config
)

// NewRootCmd creates the root command for the gamekit CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gamekit",
		Short: "Game project module scaffolding",
		Long: `gamekit scaffolds feature modules into a game project.

It provides commands to:
  - Initialize a project workspace
  - Install modules (generated source, config assets, scene wiring)
  - Inspect install state and config drift
  - Run the build pipeline entry point`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "Path to the project directory (env: GAMEKIT_PROJECT_DIR)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: GAMEKIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewModuleCmd())
	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		return err
	}
	toolConfig = cfg

	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("gamekit started", "version", version.GetInfo().Version)
	return nil
}

// projectDir resolves the target project directory: flag > config > cwd.
func projectDir() string {
	if projectFlag != "" {
		return projectFlag
	}
	if toolConfig != nil && toolConfig.ProjectDir != "" {
		return toolConfig.ProjectDir
	}
	return "."
}

// sceneFile returns the configured scene file logical path.
func sceneFile() string {
	if toolConfig != nil && toolConfig.SceneFile != "" {
		return toolConfig.SceneFile
	}
	return config.DefaultConfig().SceneFile
}

// openProject opens the target project, translating a missing workspace
// into a user-facing error.
func openProject() (*project.Project, error) {
	proj, err := project.Open(projectDir())
	if err != nil {
		if project.IsNotAProject(err) {
			return nil, &gkerrors.ExitError{
				Code: gkerrors.ExitNotAProject,
				Err: gkerrors.NewProjectError(
					err.Error(),
					projectDir(),
					"Run 'gamekit init' to create a project workspace here.",
				),
			}
		}
		return nil, err
	}
	return proj, nil
}

// newEngine opens the project and builds an install engine over it.
func newEngine() (*installer.Engine, error) {
	proj, err := openProject()
	if err != nil {
		return nil, err
	}
	return installer.New(proj, sceneFile()), nil
}
