package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/catalog"
	"github.com/thenoetrevino/ugcctl/internal/cli/handler"
	"github.com/thenoetrevino/ugcctl/internal/cli/styles"
	"github.com/thenoetrevino/ugcctl/internal/models"
	projectservice "github.com/thenoetrevino/ugcctl/internal/services/project"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long: `List the project catalog.

The list is filtered by status, then by a case-insensitive name search,
then sorted. Examples:
  ugcctl project list --status active --sort update_on --order desc
  ugcctl project list --search nice --quiet`,
		RunE: handler.Command(runList),
	}

	cmd.Flags().String("status", "all", "Status filter: all, active, inactive")
	cmd.Flags().String("search", "", "Case-insensitive name search")
	cmd.Flags().String("sort", "name", "Sort key: name, create_on, update_on")
	cmd.Flags().String("order", "asc", "Sort direction: asc, desc")
	handler.AddOutputFlags(cmd, true)

	return cmd
}

func runList(ctx context.Context, env *handler.Env) error {
	opts, err := parseListOptions(env.Flags)
	if err != nil {
		return err
	}

	projects, err := env.App().ProjectService.List(ctx, projectservice.ListRequest{
		SortBy: opts.Sort.Key.String(),
		Order:  opts.Sort.Direction.String(),
	})
	if err != nil {
		return env.Fail(err)
	}

	visible := catalog.Apply(projects, opts)
	summary := catalog.Summary(projects)

	if env.Formatter.Quiet {
		for _, p := range visible {
			fmt.Printf("%d\n", p.ID)
		}
		return nil
	}

	if env.Formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"projects": visible,
			"summary":  summary,
		})
	}

	msgs := env.App().Messages
	switch {
	case len(projects) == 0:
		fmt.Println(msgs.NoProjects)
		return nil
	case len(visible) == 0:
		fmt.Println(msgs.NoResults)
		return nil
	}

	fmt.Println(renderProjects(visible))
	fmt.Printf("%d %s, %d %s (%d %s)\n",
		summary.Active, msgs.Active,
		summary.Inactive, msgs.Inactive,
		summary.Total, msgs.Projects)
	return nil
}

func parseListOptions(flags *handler.FlagParser) (catalog.Options, error) {
	var opts catalog.Options

	status, err := flags.String("status")
	if err != nil {
		return opts, err
	}
	if opts.Status, err = catalog.ParseStatusFilter(status); err != nil {
		return opts, flags.Validation(err)
	}

	if opts.Search, err = flags.String("search"); err != nil {
		return opts, err
	}

	sortBy, err := flags.String("sort")
	if err != nil {
		return opts, err
	}
	if opts.Sort.Key, err = catalog.ParseSortKey(sortBy); err != nil {
		return opts, flags.Validation(err)
	}

	order, err := flags.String("order")
	if err != nil {
		return opts, err
	}
	if opts.Sort.Direction, err = catalog.ParseDirection(order); err != nil {
		return opts, flags.Validation(err)
	}

	return opts, nil
}

func renderProjects(projects []*models.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			styles.RenderStatus(p.Enabled),
			p.CreatedAt.DateString(),
			p.UpdatedAt.DateString(),
		})
	}
	return styles.RenderTable([]string{"ID", "Name", "Status", "Created", "Updated"}, rows, "-")
}
