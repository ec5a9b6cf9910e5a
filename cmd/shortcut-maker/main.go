package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/shortcut-maker/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Failures of the run itself are already printed; cobra's own
		// (unknown flag or command) are not.
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
