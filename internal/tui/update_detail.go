package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/ugcctl/internal/tui/huhforms"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// ============================================================================
// DETAIL SCREEN HANDLERS
// ============================================================================

// handleDetailKey dispatches key events on the detail screen.
func (m Model) handleDetailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.Back:
		return m.handleBack()
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.NextRow, "down":
		m.DetailState.MoveDown()
	case km.PrevRow, "up":
		m.DetailState.MoveUp()
	case km.NextColumn, "right":
		m.DetailState.NextColumn()
	case km.PrevColumn, "left":
		m.DetailState.PrevColumn()
	case km.SortColumn:
		m.DetailState.SortBySelectedColumn()
	case km.Search:
		return m.enterSearch(m.DetailState.Filter())
	case km.Export:
		return m.handleOpenExportPicker()
	case km.CopyPath:
		return m.handleCopyPath()
	case km.Reload:
		return m, m.loadDetails()
	}

	return m, nil
}

// handleBack returns to the catalog. A detail request still in flight is
// invalidated so its response is dropped.
func (m Model) handleBack() (tea.Model, tea.Cmd) {
	m.DetailState.Requests.Invalidate()
	m.UiState.SetScreen(state.CatalogScreen)
	return m, nil
}

// handleOpenExportPicker opens the format × window picker.
// Only one export runs at a time.
func (m Model) handleOpenExportPicker() (tea.Model, tea.Cmd) {
	if m.DetailState.Status() != state.Loaded {
		return m, nil
	}
	if m.DetailState.Exporting() {
		m.notify(state.LevelInfo, m.Messages.Exporting)
		return m, nil
	}

	choice := ""
	m.exportChoice = &choice
	m.ExportForm = huhforms.CreateExportForm(m.DetailState.Name(), m.exportChoice).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))
	m.UiState.SetMode(state.ExportPickerMode)
	return m, m.ExportForm.Init()
}

// handleCopyPath copies the last export path of this project
func (m Model) handleCopyPath() (tea.Model, tea.Cmd) {
	path := m.DetailState.LastExport()
	if path == "" {
		return m, nil
	}
	return m, m.copyPath(path)
}
