// Package main is the entry point for the gamekit CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gamekit-dev/gamekit/internal/cmd"
	gkerrors "github.com/gamekit-dev/gamekit/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *gkerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already rendered it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(gkerrors.ExitCodeFromError(err))
	}
}
