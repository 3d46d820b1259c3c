package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/ugcctl/internal/app"
	"github.com/thenoetrevino/ugcctl/internal/config"
	"github.com/thenoetrevino/ugcctl/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false for an injected App, which the caller closes
	owned bool
}

type appKey struct{}

// WithApp returns a context carrying an existing App.
// GetCLIFromContext uses it instead of building a new one.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// NewCLI loads the config and opens the application
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns a CLI over the App carried by ctx, or a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, errors.New("nil context")
	}
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
