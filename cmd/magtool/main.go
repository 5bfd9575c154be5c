package main

import (
	"fmt"
	"os"

	"github.com/unitsafe/mag/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "magtool:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
