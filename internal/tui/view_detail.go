package tui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/ugcctl/internal/timeslots"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// viewDetail renders the time-series table of the open project
func (m Model) viewDetail() string {
	ds := m.DetailState

	title := m.styles.Title.Render(ds.Name())
	summary := fmt.Sprintf("id %d", ds.ProjectID())
	if p := ds.Project(); p != nil {
		status := m.styles.Enabled.Render(m.Messages.Active)
		if !p.Enabled {
			status = m.styles.Disabled.Render(m.Messages.Inactive)
		}
		summary = fmt.Sprintf("id %d  ·  %s  ·  created %s  ·  updated %s",
			p.ID, status, p.CreatedAt.DateString(), p.UpdatedAt.DateString())
	}
	sort := ds.Sort()
	summary += fmt.Sprintf("  ·  sort: %s %s", sort.Key, sort.Direction)
	tbl := ds.Table()
	if ds.Filter() != "" {
		summary += "  ·  " + m.Messages.Results(len(tbl.Rows), ds.Filter())
	}

	var body, legend string
	switch {
	case ds.Status() == state.Failed:
		body = m.emptyState(m.Messages.LoadDetails)
	case ds.Status() == state.Loading:
		body = m.emptyState(m.Messages.Loading)
	case len(tbl.Rows) == 0 && ds.Filter() != "":
		body = m.emptyState(m.Messages.NoMatches(ds.Filter()))
	case len(tbl.Rows) == 0:
		body = m.emptyState(m.Messages.NoValues)
	default:
		body = m.detailTable(tbl, sort)
		legend = m.styles.Subtle.Render(indicatorLegend(tbl))
	}

	km := m.Config.KeyMappings
	hints := []string{
		km.PrevColumn + km.NextColumn + " column",
		km.SortColumn + " sort",
		km.Search + " filter",
		km.Export + " export",
		km.Back + " back",
		km.ShowHelp + " help",
	}
	switch {
	case ds.Exporting():
		hints = append(hints, m.Messages.Exporting)
	case ds.LastExport() != "":
		hints = append(hints, km.CopyPath+" copy "+ds.LastExport())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.infoLine(summary),
		m.indicatorLine(),
		body,
		legend,
		m.statusBar(hints...),
	)
}

func (m Model) detailTable(tbl timeslots.Table, sort timeslots.SortState) string {
	headers := tbl.Header()
	sortedCol := -1
	for i := range headers {
		if key, ok := tbl.ColumnKey(i); ok && key == sort.Key {
			headers[i] += sortMarker(sort.Direction)
			sortedCol = i
		}
	}

	selectedRow := m.DetailState.SelectedRow()
	selectedCol := m.DetailState.SelectedColumn()
	start, end := window(len(tbl.Rows), selectedRow, m.UiState.ContentHeight()-1)

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, tbl.Cells(i))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow && col == selectedCol:
				return m.styles.Selected.Bold(true)
			case row == table.HeaderRow && col == sortedCol:
				return m.styles.Sorted
			case row == table.HeaderRow:
				return m.styles.Header
			case start+row == selectedRow:
				return m.styles.Selected
			case rows[row][col] == timeslots.Placeholder:
				return m.styles.Placeholder
			}
			return m.styles.Normal
		})

	return t.String()
}

// indicatorLine lists the indicators the project measures, blank until loaded
func (m Model) indicatorLine() string {
	indicators := m.DetailState.Indicators()
	if m.DetailState.Status() != state.Loaded || len(indicators) == 0 {
		return ""
	}
	parts := make([]string, 0, len(indicators))
	for _, ind := range indicators {
		parts = append(parts, m.Messages.Indicator(ind.Label, ind.Timeslots))
	}
	return m.styles.Subtle.Render(m.Messages.Indicators + ": " + strings.Join(parts, "  ·  "))
}

// indicatorLegend maps positional headers back to category ids
func indicatorLegend(tbl timeslots.Table) string {
	parts := make([]string, 0, len(tbl.Columns))
	for i, id := range tbl.Columns {
		parts = append(parts, timeslots.ColumnLabel(i)+" = "+strconv.Itoa(id))
	}
	return strings.Join(parts, "  ")
}
