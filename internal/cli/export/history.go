package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/cli/handler"
	"github.com/thenoetrevino/ugcctl/internal/cli/styles"
	"github.com/thenoetrevino/ugcctl/internal/database"
	"github.com/thenoetrevino/ugcctl/internal/models"
)

// HistoryCmd returns the export history subcommand
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous exports",
		Long:  "List exports recorded on this machine, newest first.",
		RunE:  handler.Command(runHistory),
	}

	cmd.Flags().Int("id", 0, "Only exports of this project")
	cmd.Flags().Int("limit", 20, "Maximum number of entries (0 for all)")
	handler.AddOutputFlags(cmd, true)

	return cmd
}

func runHistory(ctx context.Context, env *handler.Env) error {
	id, err := env.Flags.OptionalProjectID("id")
	if err != nil {
		return err
	}
	limit, err := env.Flags.NonNegativeInt("limit")
	if err != nil {
		return err
	}

	records, err := env.App().ExportService.History(ctx, database.ExportFilter{ProjectID: id, Limit: limit})
	if err != nil {
		return env.Fail(err)
	}

	if env.Formatter.Quiet {
		for _, rec := range records {
			fmt.Println(rec.Path)
		}
		return nil
	}

	if env.Formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"exports": records,
		})
	}

	if len(records) == 0 {
		fmt.Println("No exports recorded")
		return nil
	}

	fmt.Println(renderHistory(records))
	return nil
}

func renderHistory(records []*models.ExportRecord) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(rec.ProjectID),
			rec.Format,
			strconv.Itoa(rec.AggregateHours) + "h",
			humanize.Bytes(uint64(max(rec.Bytes, 0))),
			humanize.Time(rec.CreatedAt),
			rec.ExportedBy,
			rec.Path,
		})
	}
	return styles.RenderTable([]string{"Project", "Format", "Window", "Size", "When", "By", "Path"}, rows, "")
}
