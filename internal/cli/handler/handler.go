// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/app"
	"github.com/thenoetrevino/ugcctl/internal/cli"
)

// Env is what a command body gets: the application, the formatter chosen by
// --json/--quiet and a flag parser reporting usage errors through it.
type Env struct {
	CLI       *cli.CLI
	Formatter *cli.OutputFormatter
	Flags     *FlagParser
}

// App returns the application container
func (e *Env) App() *app.App {
	return e.CLI.App
}

// Fail reports a service error and returns it with its exit code
func (e *Env) Fail(err error) error {
	return e.Formatter.Fail(err, e.CLI.App.Client.BaseURL())
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(run func(ctx context.Context, env *Env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
				fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
			}
			return cli.Exit(cli.ExitError, err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("error closing CLI", "error", err)
			}
		}()

		return run(ctx, &Env{
			CLI:       cliInstance,
			Formatter: formatter,
			Flags:     NewFlagParser(cmd, formatter),
		})
	}
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quiet bool) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	if quiet {
		cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
	}
}
