package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gamekit-dev/gamekit/internal/installer"
	"github.com/gamekit-dev/gamekit/internal/output"
	"github.com/gamekit-dev/gamekit/internal/project"
)

// NewModuleStatusCmd creates the module status command.
func NewModuleStatusCmd() *cobra.Command {
	var watchFlag bool

	c := &cobra.Command{
		Use:   "status [module]",
		Short: "Show per-module artifact state",
		Long: `Show which artifacts (generated files, config asset, scene objects) of
each module are present. State is re-derived from the project on every
invocation; nothing is stored.

With --watch, the report re-renders whenever project artifacts change.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runModuleStatus(args, watchFlag)
		},
	}

	c.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-render on project changes")

	return c
}

func runModuleStatus(args []string, watch bool) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	render := func() error {
		var statuses []installer.ModuleStatus
		if len(args) == 1 {
			s, err := eng.Status(args[0])
			if err != nil {
				return err
			}
			statuses = []installer.ModuleStatus{s}
		} else {
			var err error
			statuses, err = eng.StatusAll()
			if err != nil {
				return err
			}
		}

		for _, s := range statuses {
			header := s.Title
			if s.Complete() {
				header = output.FormatCheckmark(header)
			} else if s.Installed {
				header = header + " " + output.StatusStyle(output.StatusPending).Render("(wiring pending)")
			}
			output.Println(output.StyleSummary.Render(s.Name) + "  " + header)

			for _, a := range s.Artifacts {
				state := output.StatusMissing
				if a.Present {
					state = output.StatusExisting
				}
				output.Println("  " + output.FormatArtifactLine(a.Kind, a.Path, state))
			}
			output.Println("")
		}
		return nil
	}

	if err := render(); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	w, err := project.NewWatcher(eng.Project())
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	output.Info("watching for changes", "project", eng.Project().Root)
	for {
		select {
		case <-interrupt:
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			output.Println("")
			if err := render(); err != nil {
				return err
			}
		}
	}
}
