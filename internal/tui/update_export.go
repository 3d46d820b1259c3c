package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/ugcctl/internal/export"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// updateExportPicker feeds the picker form and starts the export once a
// choice is submitted.
func (m Model) updateExportPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.ExportForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.closeExportPicker()
			return m, nil
		}
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetSize(size.Width, size.Height)
		m.NotificationState.SetWindowSize(size.Width, size.Height)
	}

	model, cmd := m.ExportForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.ExportForm = f
	}

	switch m.ExportForm.State {
	case huh.StateAborted:
		m.closeExportPicker()
		return m, nil
	case huh.StateCompleted:
		selected := *m.exportChoice
		m.closeExportPicker()

		choice, err := export.ParseChoice(selected)
		if err != nil {
			slog.Error("invalid export choice", "choice", selected, "error", err)
			return m, nil
		}
		m.notify(state.LevelInfo, m.Messages.Exporting)
		return m, m.runExport(choice)
	}

	return m, cmd
}

func (m *Model) closeExportPicker() {
	m.ExportForm = nil
	m.exportChoice = nil
	m.UiState.SetMode(state.NormalMode)
}
