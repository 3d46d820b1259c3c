package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleShowHelp opens the key map overlay.
func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.helpContent = m.renderHelp()
	m.UiState.SetMode(state.HelpMode)
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", " ", "space":
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// helpMarkdown lists the configured key bindings
func (m Model) helpMarkdown() string {
	km := m.Config.KeyMappings
	var b strings.Builder

	section := func(title string, rows [][2]string) {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n|---|---|\n", title)
		for _, r := range rows {
			fmt.Fprintf(&b, "| `%s` | %s |\n", r[0], r[1])
		}
		b.WriteString("\n")
	}

	section("Catalog", [][2]string{
		{km.NextRow + " / " + km.PrevRow, "Move selection"},
		{km.Search, "Search by name"},
		{km.CycleStatus, "Cycle status filter (all, active, inactive)"},
		{km.SortName + " " + km.SortCreated + " " + km.SortUpdated, "Sort by name, creation, update (again to reverse)"},
		{km.Toggle, "Enable or disable the project"},
		{km.ViewDetails, "Open project details"},
	})
	section("Details", [][2]string{
		{km.NextRow + " / " + km.PrevRow, "Move row"},
		{km.PrevColumn + " / " + km.NextColumn, "Select column"},
		{km.SortColumn, "Sort by selected column (again to reverse)"},
		{km.Search, "Filter values"},
		{km.Export, "Export CSV or JSON"},
		{km.CopyPath, "Copy last export path"},
		{km.Back, "Back to catalog"},
	})
	section("General", [][2]string{
		{km.Reload, "Reload"},
		{km.ShowHelp, "Toggle help"},
		{km.Quit, "Quit"},
	})

	return b.String()
}

// renderHelp renders the help markdown for the current width.
// Falls back to the raw markdown when glamour fails.
func (m Model) renderHelp() string {
	md := m.helpMarkdown()

	width := max(min(m.UiState.Width()-8, 80), 20)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Warn("help renderer unavailable", "error", err)
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		slog.Warn("failed to render help", "error", err)
		return md
	}
	return strings.TrimRight(out, "\n")
}
