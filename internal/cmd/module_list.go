package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gamekit-dev/gamekit/internal/catalog"
	"github.com/gamekit-dev/gamekit/internal/output"
)

// NewModuleListCmd creates the module list command.
func NewModuleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog modules and their install state",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runModuleList()
		},
	}
}

func runModuleList() error {
	proj, err := openProject()
	if err != nil {
		return err
	}

	t := output.NewTable("NAME", "TITLE", "STATE", "DESCRIPTION")
	for _, m := range catalog.List() {
		state := output.StatusMissing
		if m.Installed(proj) {
			state = output.StatusInstalled
		}
		t.Row(m.Name, m.Title, output.StatusStyle(state).Render(state), m.Description)
	}

	output.Println(t.String())
	return nil
}
