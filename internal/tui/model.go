package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/atotto/clipboard"
	"github.com/thenoetrevino/ugcctl/internal/app"
	"github.com/thenoetrevino/ugcctl/internal/config"
	"github.com/thenoetrevino/ugcctl/internal/locale"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx      context.Context
	App      *app.App
	Config   *config.Config
	Messages *locale.Catalog

	UiState           *state.UIState
	CatalogState      *state.CatalogState
	DetailState       *state.DetailState
	NotificationState *state.NotificationState

	// SearchInput edits the catalog search or the detail filter
	SearchInput textinput.Model

	// ExportForm is non-nil while the export picker is open
	ExportForm   *huh.Form
	exportChoice *string

	helpContent string
	styles      styles

	// copyToClipboard is swapped in tests
	copyToClipboard func(string) error
}

// InitialModel creates the TUI model. Nothing is fetched until Init.
func InitialModel(ctx context.Context, a *app.App) Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.CharLimit = 64

	return Model{
		Ctx:               ctx,
		App:               a,
		Config:            a.Config,
		Messages:          a.Messages,
		UiState:           state.NewUIState(),
		CatalogState:      state.NewCatalogState(),
		DetailState:       state.NewDetailState(),
		NotificationState: state.NewNotificationState(),
		SearchInput:       input,
		styles:            newStyles(a.Config.ColorScheme),
		copyToClipboard:   clipboard.WriteAll,
	}
}

// Init starts the first catalog load
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.loadProjects()
}

// notify shows a message in the top-right corner
func (m Model) notify(level state.NotificationLevel, message string) {
	m.NotificationState.Add(level, message)
}
