package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gamekit-dev/gamekit/internal/output"
	"github.com/gamekit-dev/gamekit/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			output.Println(version.GetInfo().String())
			return nil
		},
	}
}
