package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/ugcctl/internal/models"
	projectservice "github.com/thenoetrevino/ugcctl/internal/services/project"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case projectsLoadedMsg:
		return m.handleProjectsLoaded(msg)
	case detailsLoadedMsg:
		return m.handleDetailsLoaded(msg)
	case toggledMsg:
		return m.handleToggled(msg)
	case exportDoneMsg:
		return m.handleExportDone(msg)
	case clipboardMsg:
		return m.handleClipboard(msg)
	}

	// The picker form needs every other message, not only keys
	if m.UiState.Mode() == state.ExportPickerMode {
		return m.updateExportPicker(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		if m.UiState.Mode() == state.HelpMode {
			m.helpContent = m.renderHelp()
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.UiState.Mode() == state.SearchMode {
		var cmd tea.Cmd
		m.SearchInput, cmd = m.SearchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey dispatches key events to the current mode and screen
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	}

	m.NotificationState.Clear()

	if m.UiState.Screen() == state.DetailScreen {
		return m.handleDetailKey(msg)
	}
	return m.handleCatalogKey(msg)
}

// handleProjectsLoaded applies a catalog response if it is still the current one
func (m Model) handleProjectsLoaded(msg projectsLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.CatalogState.Requests.IsCurrent(msg.seq) {
		slog.Debug("dropping stale catalog response", "seq", msg.seq)
		return m, nil
	}

	if msg.err != nil {
		slog.Error("failed to load projects", "error", msg.err)
		m.CatalogState.Fail()
		m.notify(state.LevelError, m.Messages.LoadProjects)
		return m, nil
	}

	m.CatalogState.SetProjects(msg.projects)
	return m, nil
}

// handleDetailsLoaded applies a detail response for the open project
func (m Model) handleDetailsLoaded(msg detailsLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.DetailState.Requests.IsCurrent(msg.seq) || msg.projectID != m.DetailState.ProjectID() {
		slog.Debug("dropping stale detail response", "seq", msg.seq, "project_id", msg.projectID)
		return m, nil
	}

	if msg.err != nil {
		slog.Error("failed to load project details", "project_id", msg.projectID, "error", msg.err)
		m.DetailState.Fail()
		if errors.Is(msg.err, models.ErrProjectDisabled) {
			m.notify(state.LevelWarning, m.Messages.Disabled)
		} else {
			m.notify(state.LevelError, m.Messages.LoadDetails)
		}
		return m, nil
	}

	m.DetailState.SetDetails(msg.details.Project, msg.details.Values.Indicators, msg.details.Values.Values)
	return m, nil
}

// handleToggled reports a toggle and shows the reloaded catalog.
// The list is never patched locally; a newer catalog load wins over this one.
func (m Model) handleToggled(msg toggledMsg) (tea.Model, tea.Cmd) {
	m.CatalogState.SetToggling(false)

	if errors.Is(msg.err, projectservice.ErrReloadFailed) {
		slog.Error("failed to reload projects after toggle", "project_id", msg.id, "error", msg.err)
		if msg.outcome != nil && msg.outcome.Result != nil {
			m.notify(state.LevelInfo, m.Messages.Toggled(msg.name, msg.outcome.Result.Enabled))
		}
		if m.CatalogState.Requests.IsCurrent(msg.seq) {
			m.CatalogState.Fail()
			m.notify(state.LevelError, m.Messages.LoadProjects)
		}
		return m, nil
	}

	if msg.err != nil {
		slog.Error("failed to toggle project", "project_id", msg.id, "error", msg.err)
		m.notify(state.LevelError, m.Messages.Toggle)
		return m, nil
	}

	m.notify(state.LevelInfo, m.Messages.Toggled(msg.name, msg.outcome.Result.Enabled))

	if m.CatalogState.Requests.IsCurrent(msg.seq) {
		m.CatalogState.SetProjects(msg.outcome.Projects)
	}
	return m, nil
}

// handleExportDone clears the busy flag and reports the saved file
func (m Model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	m.DetailState.SetExporting(false)

	if msg.err != nil {
		slog.Error("export failed",
			"project_id", msg.projectID,
			"format", msg.choice.Format,
			"hours", msg.choice.Hours,
			"error", msg.err)
		m.notify(state.LevelError, m.Messages.Export(string(msg.choice.Format)))
		return m, nil
	}

	if msg.projectID == m.DetailState.ProjectID() {
		m.DetailState.SetLastExport(msg.record.Path)
	}
	m.notify(state.LevelInfo, m.Messages.ExportDone(msg.record.Path))
	return m, nil
}

func (m Model) handleClipboard(msg clipboardMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Warn("clipboard write failed", "error", msg.err)
		m.notify(state.LevelWarning, m.Messages.CopyFailed)
		return m, nil
	}
	m.notify(state.LevelInfo, m.Messages.Copied)
	return m, nil
}
