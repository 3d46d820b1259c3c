package state

import (
	"github.com/thenoetrevino/ugcctl/internal/catalog"
	"github.com/thenoetrevino/ugcctl/internal/models"
)

// LoadStatus is the lifecycle of a fetched data set
type LoadStatus int

const (
	Loading LoadStatus = iota
	Loaded
	Failed
)

// CatalogState holds the fetched projects and the user's view options.
// The visible list is never stored; Visible derives it on every call.
type CatalogState struct {
	projects []*models.Project
	opts     catalog.Options
	selected int
	status   LoadStatus

	// toggling is set while a toggle request is in flight
	toggling bool

	Requests RequestTracker
}

// NewCatalogState creates an empty catalog waiting for its first load.
func NewCatalogState() *CatalogState {
	return &CatalogState{status: Loading}
}

// Status returns the load status.
func (s *CatalogState) Status() LoadStatus {
	return s.status
}

// StartLoading marks a reload in progress. Loaded data stays visible.
func (s *CatalogState) StartLoading() {
	if s.status == Failed {
		s.status = Loading
	}
}

// SetProjects replaces the fetched list and keeps the selection in range.
func (s *CatalogState) SetProjects(projects []*models.Project) {
	s.projects = projects
	s.status = Loaded
	s.clampSelection()
}

// Fail blanks the catalog after a load error.
func (s *CatalogState) Fail() {
	s.projects = nil
	s.status = Failed
	s.selected = 0
}

// Projects returns the fetched list, unfiltered.
func (s *CatalogState) Projects() []*models.Project {
	return s.projects
}

// Options returns the filter, search and sort state.
func (s *CatalogState) Options() catalog.Options {
	return s.opts
}

// Visible derives the filtered, sorted list.
func (s *CatalogState) Visible() []*models.Project {
	return catalog.Apply(s.projects, s.opts)
}

// Selected returns the highlighted project, nil when the list is empty.
func (s *CatalogState) Selected() *models.Project {
	visible := s.Visible()
	if s.selected < 0 || s.selected >= len(visible) {
		return nil
	}
	return visible[s.selected]
}

// SelectedIndex returns the highlighted row.
func (s *CatalogState) SelectedIndex() int {
	return s.selected
}

// MoveDown highlights the next row.
func (s *CatalogState) MoveDown() {
	if s.selected < len(s.Visible())-1 {
		s.selected++
	}
}

// MoveUp highlights the previous row.
func (s *CatalogState) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// CycleStatus moves the status filter to all -> active -> inactive.
func (s *CatalogState) CycleStatus() {
	s.opts.Status = s.opts.Status.Next()
	s.clampSelection()
}

// SortBy applies a header selection.
func (s *CatalogState) SortBy(key catalog.SortKey) {
	s.opts.Sort = s.opts.Sort.Toggle(key)
}

// SetSearch updates the name search and resets the selection.
func (s *CatalogState) SetSearch(query string) {
	if query == s.opts.Search {
		return
	}
	s.opts.Search = query
	s.selected = 0
}

// Toggling reports whether a toggle request is in flight.
func (s *CatalogState) Toggling() bool {
	return s.toggling
}

// SetToggling marks a toggle request as started or finished.
func (s *CatalogState) SetToggling(v bool) {
	s.toggling = v
}

func (s *CatalogState) clampSelection() {
	n := len(s.Visible())
	if s.selected >= n {
		s.selected = max(n-1, 0)
	}
}
