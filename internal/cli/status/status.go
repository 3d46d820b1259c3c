// Package status implements the backend health probe command
package status

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/cli/handler"
	"github.com/thenoetrevino/ugcctl/internal/cli/styles"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check that the UGC API is reachable",
		RunE:  handler.Command(runStatus),
	}

	handler.AddOutputFlags(cmd, false)

	return cmd
}

func runStatus(ctx context.Context, env *handler.Env) error {
	baseURL := env.App().Client.BaseURL()

	health, err := env.App().Client.Health(ctx)
	if err != nil {
		return env.Fail(err)
	}

	if env.Formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"base_url": baseURL,
			"status":   health.Status,
			"service":  health.Service,
		})
	}

	fmt.Printf("%s %s\n", styles.LabelStyle.Render("API:"), styles.ValueStyle.Render(baseURL))
	fmt.Printf("%s %s (%s)\n", styles.LabelStyle.Render("Status:"), styles.SuccessStyle.Render(health.Status), health.Service)
	return nil
}
