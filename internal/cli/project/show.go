package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/api"
	"github.com/thenoetrevino/ugcctl/internal/catalog"
	"github.com/thenoetrevino/ugcctl/internal/cli/handler"
	"github.com/thenoetrevino/ugcctl/internal/cli/styles"
	"github.com/thenoetrevino/ugcctl/internal/locale"
	"github.com/thenoetrevino/ugcctl/internal/models"
	"github.com/thenoetrevino/ugcctl/internal/timeslots"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a project and its time-series values",
		Long: `Show an enabled project and its values table.

--start-date, --end-date, --min-value and --max-value are sent to the backend.
--filter and --sort are applied locally, like the detail view does:
  ugcctl project show --id -98349789 --filter 15
  ugcctl project show --id -98349789 --sort indicator_-530806305 --order desc`,
		RunE: handler.Command(runShow),
	}

	cmd.Flags().Int("id", 0, "Project ID (required)")
	cmd.Flags().String("filter", "", "Keep rows whose times or values contain this text")
	cmd.Flags().String("sort", "time_begin", "Sort column: time_begin, time_end, indicator_<category id>")
	cmd.Flags().String("order", "asc", "Sort direction: asc, desc")
	cmd.Flags().String("start-date", "", "First day (YYYY-MM-DD)")
	cmd.Flags().String("end-date", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().Float64("min-value", 0, "Minimum value")
	cmd.Flags().Float64("max-value", 0, "Maximum value")
	handler.AddOutputFlags(cmd, false)

	return cmd
}

func runShow(ctx context.Context, env *handler.Env) error {
	id, err := env.Flags.ProjectID("id")
	if err != nil {
		return err
	}

	query, err := parseValuesQuery(env.Flags)
	if err != nil {
		return err
	}

	filter, err := env.Flags.String("filter")
	if err != nil {
		return err
	}
	state, err := parseDetailSort(env.Flags)
	if err != nil {
		return err
	}

	details, err := env.App().ProjectService.Details(ctx, id, query)
	if err != nil {
		return env.Fail(err)
	}

	table := timeslots.Apply(details.Values.Values, filter, state)
	indicators := details.Values.Indicators
	if indicators == nil {
		indicators = []models.Indicator{}
	}

	if env.Formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"project":    details.Project,
			"indicators": indicators,
			"columns":    table.Columns,
			"values":     table.Rows,
		})
	}

	msgs := env.App().Messages
	fmt.Println(renderProjectCard(details.Project))
	if len(indicators) > 0 {
		fmt.Println(renderIndicators(msgs, indicators))
	}

	switch {
	case len(table.Rows) == 0 && filter != "":
		fmt.Println(msgs.NoMatches(filter))
		return nil
	case len(table.Rows) == 0:
		fmt.Println(msgs.NoValues)
		return nil
	case filter != "":
		fmt.Println(styles.SubtitleStyle.Render(msgs.Results(len(table.Rows), filter)))
	}

	rows := make([][]string, 0, len(table.Rows))
	for i := range table.Rows {
		rows = append(rows, table.Cells(i))
	}
	fmt.Println(styles.RenderTable(table.Header(), rows, timeslots.Placeholder))
	fmt.Println(renderLegend(table.Columns))
	return nil
}

func parseValuesQuery(flags *handler.FlagParser) (api.ValuesQuery, error) {
	var q api.ValuesQuery
	var err error

	if q.StartDate, err = flags.String("start-date"); err != nil {
		return q, err
	}
	if q.EndDate, err = flags.String("end-date"); err != nil {
		return q, err
	}
	if q.MinValue, err = flags.OptionalFloat("min-value"); err != nil {
		return q, err
	}
	if q.MaxValue, err = flags.OptionalFloat("max-value"); err != nil {
		return q, err
	}
	return q, nil
}

func parseDetailSort(flags *handler.FlagParser) (timeslots.SortState, error) {
	state := timeslots.DefaultSort()

	sortBy, err := flags.String("sort")
	if err != nil {
		return state, err
	}
	if state.Key, err = timeslots.ParseSortKey(sortBy); err != nil {
		return state, flags.Validation(err)
	}

	order, err := flags.String("order")
	if err != nil {
		return state, err
	}
	if state.Direction, err = catalog.ParseDirection(order); err != nil {
		return state, flags.Validation(err)
	}
	return state, nil
}

func renderProjectCard(p *models.Project) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(p.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("ID:"), styles.ValueStyle.Render(strconv.Itoa(p.ID)))
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Status:"), styles.RenderStatus(p.Enabled))
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Created:"), styles.ValueStyle.Render(p.CreatedAt.DateString()))
	fmt.Fprintf(&b, "%s %s", styles.LabelStyle.Render("Updated:"), styles.ValueStyle.Render(p.UpdatedAt.DateString()))
	return styles.RenderCard(b.String())
}

// renderIndicators lists the indicators available for the project
func renderIndicators(msgs *locale.Catalog, indicators []models.Indicator) string {
	var b strings.Builder
	b.WriteString(styles.LabelStyle.Render(msgs.Indicators + ":"))
	for _, ind := range indicators {
		b.WriteString("\n  ")
		b.WriteString(styles.ValueStyle.Render(msgs.Indicator(ind.Label, ind.Timeslots)))
	}
	return b.String()
}

// renderLegend maps positional headers back to category IDs
func renderLegend(columns []int) string {
	parts := make([]string, 0, len(columns))
	for i, id := range columns {
		parts = append(parts, fmt.Sprintf("%s = %d", timeslots.ColumnLabel(i), id))
	}
	return styles.SubtitleStyle.Render(strings.Join(parts, "  "))
}
