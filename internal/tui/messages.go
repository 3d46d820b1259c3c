package tui

import (
	"github.com/thenoetrevino/ugcctl/internal/export"
	"github.com/thenoetrevino/ugcctl/internal/models"
	projectservice "github.com/thenoetrevino/ugcctl/internal/services/project"
)

// projectsLoadedMsg carries a catalog fetch. seq identifies the request.
type projectsLoadedMsg struct {
	seq      uint64
	projects []*models.Project
	err      error
}

// detailsLoadedMsg carries the joined project + values fetch of one project
type detailsLoadedMsg struct {
	seq       uint64
	projectID int
	details   *projectservice.Details
	err       error
}

// toggledMsg carries a toggle and the catalog reloaded after it
type toggledMsg struct {
	seq     uint64
	id      int
	name    string
	outcome *projectservice.ToggleOutcome
	err     error
}

// exportDoneMsg reports a finished export
type exportDoneMsg struct {
	projectID int
	choice    export.Choice
	record    *models.ExportRecord
	err       error
}

// clipboardMsg reports a clipboard write
type clipboardMsg struct {
	err error
}
