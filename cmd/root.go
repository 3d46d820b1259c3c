package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/cli"
	"github.com/thenoetrevino/ugcctl/internal/cli/export"
	"github.com/thenoetrevino/ugcctl/internal/cli/project"
	"github.com/thenoetrevino/ugcctl/internal/cli/status"
	"github.com/thenoetrevino/ugcctl/internal/launcher"
	"github.com/thenoetrevino/ugcctl/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "ugcctl",
	Short: "ugcctl - terminal console for the UGC analytics API",
	Long: `ugcctl administers the projects of the UGC cinema analytics backend.

Run without arguments to open the interactive console, or use the
subcommands for scripting (every command accepts --json).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The terminal belongs to the TUI and to command output
		if err := logging.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := launcher.Launch(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return cli.Exit(cli.ExitError, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(export.ExportCmd())
	rootCmd.AddCommand(status.StatusCmd())
}

// Execute runs the root command. Errors returned by subcommands have already
// been reported and carry their exit code.
func Execute() error {
	return rootCmd.Execute()
}
