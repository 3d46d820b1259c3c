package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/catalog"
	"github.com/thenoetrevino/ugcctl/internal/cli/handler"
	projectservice "github.com/thenoetrevino/ugcctl/internal/services/project"
)

// ToggleCmd returns the project toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Enable or disable a project",
		Long:  "Flip a project's enabled state, then reload the catalog.",
		RunE:  handler.Command(runToggle),
	}

	cmd.Flags().Int("id", 0, "Project ID (required)")
	handler.AddOutputFlags(cmd, true)

	return cmd
}

func runToggle(ctx context.Context, env *handler.Env) error {
	id, err := env.Flags.ProjectID("id")
	if err != nil {
		return err
	}

	outcome, err := env.App().ProjectService.Toggle(ctx, id, projectservice.ListRequest{})
	if err != nil {
		return env.Fail(err)
	}

	if env.Formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}

	if env.Formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"id":      id,
			"message": outcome.Result.Message,
			"enabled": outcome.Result.Enabled,
			"summary": catalog.Summary(outcome.Projects),
		})
	}

	fmt.Println(outcome.Result.Message)
	for _, p := range outcome.Projects {
		if p.ID == id {
			fmt.Println(env.App().Messages.Toggled(p.Name, p.Enabled))
			break
		}
	}
	return nil
}
