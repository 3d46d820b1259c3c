package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/cli/handler"
	"github.com/thenoetrevino/ugcctl/internal/cli/styles"
)

// IndicatorsCmd returns the project indicators subcommand
func IndicatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indicators",
		Short: "List a project's indicators and their categories",
		RunE:  handler.Command(runIndicators),
	}

	cmd.Flags().Int("id", 0, "Project ID (required)")
	handler.AddOutputFlags(cmd, false)

	return cmd
}

func runIndicators(ctx context.Context, env *handler.Env) error {
	id, err := env.Flags.ProjectID("id")
	if err != nil {
		return err
	}

	details, err := env.App().ProjectService.Indicators(ctx, id)
	if err != nil {
		return env.Fail(err)
	}

	if env.Formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"indicators": details,
		})
	}

	if len(details) == 0 {
		fmt.Println(env.App().Messages.NoValues)
		return nil
	}

	for _, d := range details {
		fmt.Println(styles.SectionStyle.Render(fmt.Sprintf("%s (%s)", d.Indicator.Label, d.Indicator.Identifier)))

		rows := make([][]string, 0, len(d.Categories))
		for _, c := range d.Categories {
			rows = append(rows, []string{
				strconv.Itoa(c.ID),
				c.Identifier,
				c.Label,
				styles.ColoredText(c.Color, c.Color),
			})
		}
		fmt.Println(styles.RenderTable([]string{"Category", "Identifier", "Label", "Color"}, rows, ""))
	}
	return nil
}
