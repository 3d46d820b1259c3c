package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/ugcctl/cmd"
	"github.com/thenoetrevino/ugcctl/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Anything not reported by a command is a cobra usage error
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitUsage)
	}
	os.Exit(cli.ExitCodeOf(err))
}
