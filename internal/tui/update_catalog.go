package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/ugcctl/internal/catalog"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// ============================================================================
// CATALOG SCREEN HANDLERS
// ============================================================================

// handleCatalogKey dispatches key events on the catalog screen.
func (m Model) handleCatalogKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.NextRow, "down":
		m.CatalogState.MoveDown()
	case km.PrevRow, "up":
		m.CatalogState.MoveUp()
	case km.Search:
		return m.enterSearch(m.CatalogState.Options().Search)
	case km.CycleStatus:
		m.CatalogState.CycleStatus()
	case km.SortName:
		m.CatalogState.SortBy(catalog.SortByName)
	case km.SortCreated:
		m.CatalogState.SortBy(catalog.SortByCreated)
	case km.SortUpdated:
		m.CatalogState.SortBy(catalog.SortByUpdated)
	case km.Toggle:
		return m.handleToggle()
	case km.ViewDetails:
		return m.handleOpenDetails()
	case km.Reload:
		return m, m.loadProjects()
	}

	return m, nil
}

// handleToggle flips the selected project. Ignored while a toggle is in flight.
func (m Model) handleToggle() (tea.Model, tea.Cmd) {
	p := m.CatalogState.Selected()
	if p == nil || m.CatalogState.Toggling() {
		return m, nil
	}
	return m, m.toggleProject(p.ID, p.Name)
}

// handleOpenDetails switches to the detail screen of the selected project.
// Disabled projects are refused without any request.
func (m Model) handleOpenDetails() (tea.Model, tea.Cmd) {
	p := m.CatalogState.Selected()
	if p == nil {
		return m, nil
	}
	if !p.Enabled {
		m.notify(state.LevelWarning, m.Messages.Disabled)
		return m, nil
	}

	m.DetailState.Open(p.ID, p.Name)
	m.UiState.SetScreen(state.DetailScreen)
	return m, m.loadDetails()
}
