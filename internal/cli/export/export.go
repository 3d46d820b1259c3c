package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/cli/handler"
	exportservice "github.com/thenoetrevino/ugcctl/internal/services/export"
)

// ExportCmd returns the export command. Run on its own it downloads one
// file; the history subcommand lists previous downloads.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download a project's data as CSV or JSON",
		Long: `Download a project's values aggregated over 1, 3, 6 or 12 hours.

The file is saved as project_<id>_data_<hours>h.<format> in --dir
(default: export.dir from the config). Examples:
  ugcctl export --id -98349789 --format csv --hours 6
  ugcctl export --id -98349789 --format json --hours 1 --dir /tmp --quiet`,
		RunE: handler.Command(runExport),
	}

	cmd.Flags().Int("id", 0, "Project ID (required)")
	cmd.Flags().String("format", "csv", "File format: csv, json")
	cmd.Flags().Int("hours", 1, "Aggregation window in hours: 1, 3, 6, 12")
	cmd.Flags().String("dir", "", "Target directory")
	handler.AddOutputFlags(cmd, true)

	cmd.AddCommand(HistoryCmd())

	return cmd
}

func runExport(ctx context.Context, env *handler.Env) error {
	id, err := env.Flags.ProjectID("id")
	if err != nil {
		return err
	}
	format, err := env.Flags.Format("format")
	if err != nil {
		return err
	}
	hours, err := env.Flags.Hours("hours")
	if err != nil {
		return err
	}
	dir, err := env.Flags.String("dir")
	if err != nil {
		return err
	}

	rec, err := env.App().ExportService.Export(ctx, exportservice.Request{
		ProjectID: id,
		Format:    format,
		Hours:     hours,
		Dir:       dir,
	})
	if err != nil {
		return env.Fail(err)
	}

	if env.Formatter.Quiet {
		fmt.Println(rec.Path)
		return nil
	}

	if env.Formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"export":  rec,
		})
	}

	fmt.Println(env.App().Messages.ExportDone(rec.Path))
	return nil
}
