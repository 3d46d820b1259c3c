package state

import (
	"github.com/thenoetrevino/ugcctl/internal/models"
	"github.com/thenoetrevino/ugcctl/internal/timeslots"
)

// DetailState holds the project shown on the detail screen and its table state.
type DetailState struct {
	projectID int
	name      string
	project    *models.Project
	indicators []models.Indicator
	values     []models.NumericValue
	status    LoadStatus

	filter      string
	sort        timeslots.SortState
	selectedRow int
	selectedCol int

	// exporting is set while an export download is in flight
	exporting  bool
	lastExport string

	Requests RequestTracker
}

// NewDetailState creates an empty detail state.
func NewDetailState() *DetailState {
	return &DetailState{sort: timeslots.DefaultSort()}
}

// Open resets the state for a new project. name is shown until the load completes.
func (s *DetailState) Open(projectID int, name string) {
	requests := s.Requests
	*s = DetailState{
		projectID: projectID,
		name:      name,
		status:    Loading,
		sort:      timeslots.DefaultSort(),
		Requests:  requests,
	}
}

// ProjectID returns the project being shown.
func (s *DetailState) ProjectID() int {
	return s.projectID
}

// Name returns the project name.
func (s *DetailState) Name() string {
	if s.project != nil {
		return s.project.Name
	}
	return s.name
}

// Project returns the loaded project, nil until loaded.
func (s *DetailState) Project() *models.Project {
	return s.project
}

// Indicators returns the indicators measured for the project.
func (s *DetailState) Indicators() []models.Indicator {
	return s.indicators
}

// Status returns the load status.
func (s *DetailState) Status() LoadStatus {
	return s.status
}

// StartLoading marks a reload in progress.
func (s *DetailState) StartLoading() {
	s.status = Loading
}

// SetDetails stores a completed load.
func (s *DetailState) SetDetails(project *models.Project, indicators []models.Indicator, values []models.NumericValue) {
	s.project = project
	s.indicators = indicators
	s.values = values
	s.status = Loaded
	s.clamp()
}

// Fail blanks the view after a load error.
func (s *DetailState) Fail() {
	s.project = nil
	s.indicators = nil
	s.values = nil
	s.status = Failed
	s.selectedRow = 0
	s.selectedCol = 0
}

// Table derives the filtered, sorted table.
func (s *DetailState) Table() timeslots.Table {
	return timeslots.Apply(s.values, s.filter, s.sort)
}

// Filter returns the row filter text.
func (s *DetailState) Filter() string {
	return s.filter
}

// SetFilter updates the row filter and resets the row selection.
func (s *DetailState) SetFilter(filter string) {
	if filter == s.filter {
		return
	}
	s.filter = filter
	s.selectedRow = 0
	s.clamp()
}

// Sort returns the table sort state.
func (s *DetailState) Sort() timeslots.SortState {
	return s.sort
}

// SortBySelectedColumn applies a header selection on the highlighted column.
func (s *DetailState) SortBySelectedColumn() {
	key, ok := s.Table().ColumnKey(s.selectedCol)
	if !ok {
		return
	}
	s.sort = s.sort.Toggle(key)
}

// SelectedRow returns the highlighted row.
func (s *DetailState) SelectedRow() int {
	return s.selectedRow
}

// SelectedColumn returns the highlighted header column (0 and 1 are the times).
func (s *DetailState) SelectedColumn() int {
	return s.selectedCol
}

// MoveDown highlights the next row.
func (s *DetailState) MoveDown() {
	if s.selectedRow < len(s.Table().Rows)-1 {
		s.selectedRow++
	}
}

// MoveUp highlights the previous row.
func (s *DetailState) MoveUp() {
	if s.selectedRow > 0 {
		s.selectedRow--
	}
}

// NextColumn highlights the next header column.
func (s *DetailState) NextColumn() {
	if s.selectedCol < len(s.Table().Header())-1 {
		s.selectedCol++
	}
}

// PrevColumn highlights the previous header column.
func (s *DetailState) PrevColumn() {
	if s.selectedCol > 0 {
		s.selectedCol--
	}
}

// Exporting reports whether an export is in flight.
func (s *DetailState) Exporting() bool {
	return s.exporting
}

// SetExporting marks an export as started or finished.
func (s *DetailState) SetExporting(v bool) {
	s.exporting = v
}

// LastExport returns the path of the last saved export of this session.
func (s *DetailState) LastExport() string {
	return s.lastExport
}

// SetLastExport records a saved export path.
func (s *DetailState) SetLastExport(path string) {
	s.lastExport = path
}

func (s *DetailState) clamp() {
	t := s.Table()
	if s.selectedRow >= len(t.Rows) {
		s.selectedRow = max(len(t.Rows)-1, 0)
	}
	if s.selectedCol >= len(t.Header()) {
		s.selectedCol = max(len(t.Header())-1, 0)
	}
}
