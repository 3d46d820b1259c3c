package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/ugcctl/internal/catalog"
	"github.com/thenoetrevino/ugcctl/internal/tui/notifications"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = m.Messages.Loading
		return view
	}

	var base string
	if m.UiState.Screen() == state.DetailScreen {
		base = m.viewDetail()
	} else {
		base = m.viewCatalog()
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}

	switch m.UiState.Mode() {
	case state.HelpMode:
		if l := m.centeredLayer(m.styles.Modal.Render(m.helpContent)); l != nil {
			layers = append(layers, l)
		}
	case state.ExportPickerMode:
		if m.ExportForm != nil {
			box := m.styles.Modal.Width(min(m.UiState.Width()*3/4, 60)).Render(m.ExportForm.View())
			if l := m.centeredLayer(box); l != nil {
				layers = append(layers, l)
			}
		}
	}

	layers = append(layers, m.NotificationState.GetLayers(func(n state.Notification) string {
		return notifications.RenderFromState(m.Config.ColorScheme, n, m.UiState.Width()/3)
	})...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// centeredLayer creates a layer positioned at the center of the screen
func (m Model) centeredLayer(content string) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((m.UiState.Width()-lipgloss.Width(content))/2, 0)
	y := max((m.UiState.Height()-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// infoLine shows the search box while editing, otherwise the given summary
func (m Model) infoLine(summary string) string {
	if m.UiState.Mode() == state.SearchMode {
		return m.styles.Search.Render(m.SearchInput.View())
	}
	return m.styles.Subtle.Render(summary)
}

// statusBar renders the bottom hint line across the full width
func (m Model) statusBar(hints ...string) string {
	return m.styles.StatusBar.
		Width(m.UiState.Width()).
		Render(strings.Join(hints, "  "))
}

// sortMarker is appended to the header of the sorted column
func sortMarker(d catalog.Direction) string {
	if d == catalog.Desc {
		return " ▼"
	}
	return " ▲"
}

// window returns the [start, end) slice of rows to draw so that the
// selected row stays visible
func window(total, selected, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := max(selected-height+1, 0)
	return start, start + height
}

// emptyState renders a one-line message where the table would be
func (m Model) emptyState(message string) string {
	return lipgloss.NewStyle().Padding(1, 2).Render(m.styles.Subtle.Render(message))
}
