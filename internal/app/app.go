package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/ugcctl/internal/api"
	"github.com/thenoetrevino/ugcctl/internal/config"
	"github.com/thenoetrevino/ugcctl/internal/database"
	"github.com/thenoetrevino/ugcctl/internal/locale"
	exportservice "github.com/thenoetrevino/ugcctl/internal/services/export"
	projectservice "github.com/thenoetrevino/ugcctl/internal/services/project"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config   *config.Config
	Client   *api.Client
	Messages *locale.Catalog

	// Export history (nil when the database could not be opened)
	db *sql.DB

	// Service layer
	ProjectService projectservice.Service
	ExportService  exportservice.Service
}

// New creates a new App with all services initialized.
// db may be nil; exports are then saved without being recorded.
func New(cfg *config.Config, db *sql.DB, opts ...Option) (*App, error) {
	o := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	client, err := api.New(api.Options{
		BaseURL:     cfg.API.BaseURL,
		Token:       cfg.API.Token,
		LegacyToken: cfg.API.LegacyToken,
		Timeout:     cfg.API.Timeout,
		HTTPClient:  o.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	a := &App{
		Config:         cfg,
		Client:         client,
		Messages:       locale.For(cfg.UI.Language),
		db:             db,
		ProjectService: projectservice.NewService(client, cfg.API.CatalogSource),
	}

	if db != nil {
		a.ExportService = exportservice.NewService(client, database.NewExportRepo(db), cfg.Export.Dir)
	} else {
		a.ExportService = exportservice.NewService(client, nil, cfg.Export.Dir)
	}

	o.logger.Debug("app initialized",
		"base_url", client.BaseURL(),
		"catalog_source", cfg.API.CatalogSource,
		"history", db != nil)

	return a, nil
}

// Open opens the export history database named by the config, then builds the App.
// A history database that cannot be opened is logged and skipped.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, cfg.Export.HistoryDB)
	if err != nil {
		slog.Warn("export history disabled", "error", err)
		db = nil
	}

	a, err := New(cfg, db, opts...)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}
	return a, nil
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
