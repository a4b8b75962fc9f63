// Command navcalc is a maritime navigation and marine-engineering
// calculator. See internal/cli for the command surface.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/navcalc/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(cli.NormalizeArgs(os.Args[1:]))

	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
