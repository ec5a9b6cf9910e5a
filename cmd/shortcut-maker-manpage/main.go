package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/shortcut-maker/internal/cli"
	"github.com/arthur-debert/shortcut-maker/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SHORTCUT-MAKER",
		Section: "1",
		Source:  "shortcut-maker " + version.Version,
		Manual:  "shortcut-maker manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
