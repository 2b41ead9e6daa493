package cmd

import (
	"github.com/spf13/cobra"
)

// NewModuleCmd creates the module command group.
func NewModuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "module",
		Aliases: []string{"mod"},
		Short:   "Module operations",
		Long:    `Commands for installing and inspecting gamekit modules.`,
	}

	cmd.AddCommand(
		NewModuleListCmd(),
		NewModuleInstallCmd(),
		NewModuleStatusCmd(),
		NewModuleDiffCmd(),
	)

	return cmd
}
