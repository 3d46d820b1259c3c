package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/ugcctl/internal/app"
	"github.com/thenoetrevino/ugcctl/internal/config"
	"github.com/thenoetrevino/ugcctl/internal/logging"
	"github.com/thenoetrevino/ugcctl/internal/tui/core"
)

// Launch starts the TUI application
func Launch(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		slog.Warn("ignoring log level", "level", cfg.Log.Level, "error", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	slog.Info("starting tui", "base_url", application.Client.BaseURL(), "language", cfg.UI.Language)

	p := tea.NewProgram(core.New(ctx, application), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("tui stopped")
	return nil
}
