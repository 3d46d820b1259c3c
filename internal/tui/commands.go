package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/ugcctl/internal/api"
	"github.com/thenoetrevino/ugcctl/internal/export"
	exportservice "github.com/thenoetrevino/ugcctl/internal/services/export"
	projectservice "github.com/thenoetrevino/ugcctl/internal/services/project"
)

// loadProjects fetches the catalog under a new request tag.
// Any response to an older catalog request is dropped when it arrives.
func (m Model) loadProjects() tea.Cmd {
	seq := m.CatalogState.Requests.Next()
	m.CatalogState.StartLoading()

	ctx, svc := m.Ctx, m.App.ProjectService
	return func() tea.Msg {
		projects, err := svc.List(ctx, projectservice.ListRequest{})
		return projectsLoadedMsg{seq: seq, projects: projects, err: err}
	}
}

// loadDetails fetches the project and its values of the open detail screen
func (m Model) loadDetails() tea.Cmd {
	seq := m.DetailState.Requests.Next()
	m.DetailState.StartLoading()

	ctx, svc, id := m.Ctx, m.App.ProjectService, m.DetailState.ProjectID()
	return func() tea.Msg {
		details, err := svc.Details(ctx, id, api.ValuesQuery{})
		return detailsLoadedMsg{seq: seq, projectID: id, details: details, err: err}
	}
}

// toggleProject flips a project and reloads the catalog in the same command.
// The reload counts as a catalog request.
func (m Model) toggleProject(id int, name string) tea.Cmd {
	seq := m.CatalogState.Requests.Next()
	m.CatalogState.SetToggling(true)

	ctx, svc := m.Ctx, m.App.ProjectService
	return func() tea.Msg {
		outcome, err := svc.Toggle(ctx, id, projectservice.ListRequest{})
		return toggledMsg{seq: seq, id: id, name: name, outcome: outcome, err: err}
	}
}

// runExport downloads one export into the configured directory
func (m Model) runExport(choice export.Choice) tea.Cmd {
	m.DetailState.SetExporting(true)

	ctx, svc, id := m.Ctx, m.App.ExportService, m.DetailState.ProjectID()
	return func() tea.Msg {
		rec, err := svc.Export(ctx, exportservice.Request{
			ProjectID: id,
			Format:    choice.Format,
			Hours:     choice.Hours,
		})
		return exportDoneMsg{projectID: id, choice: choice, record: rec, err: err}
	}
}

// copyPath puts a path on the system clipboard
func (m Model) copyPath(path string) tea.Cmd {
	write := m.copyToClipboard
	return func() tea.Msg {
		return clipboardMsg{err: write(path)}
	}
}
