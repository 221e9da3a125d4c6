package main

import (
	"fmt"
	"os"

	"github.com/dkrantsberg/camlquery/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "camlq: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
