package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// enterSearch focuses the input with the current query of the screen
func (m Model) enterSearch(current string) (tea.Model, tea.Cmd) {
	m.SearchInput.SetValue(current)
	m.SearchInput.CursorEnd()
	m.UiState.SetMode(state.SearchMode)
	cmd := m.SearchInput.Focus()
	return m, cmd
}

// handleSearchMode edits the catalog search or the detail filter.
// The view follows every keystroke; enter keeps the text, esc clears it.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.SearchInput.Blur()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "esc":
		m.SearchInput.SetValue("")
		m.applySearch()
		m.SearchInput.Blur()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	m.applySearch()
	return m, cmd
}

func (m Model) applySearch() {
	query := m.SearchInput.Value()
	if m.UiState.Screen() == state.DetailScreen {
		m.DetailState.SetFilter(query)
		return
	}
	m.CatalogState.SetSearch(query)
}
