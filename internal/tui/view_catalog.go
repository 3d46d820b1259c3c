package tui

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/ugcctl/internal/catalog"
	"github.com/thenoetrevino/ugcctl/internal/models"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

var catalogColumns = []struct {
	title string
	key   catalog.SortKey
	sorts bool
}{
	{title: "ID"},
	{title: "Name", key: catalog.SortByName, sorts: true},
	{title: "Status"},
	{title: "Created", key: catalog.SortByCreated, sorts: true},
	{title: "Updated", key: catalog.SortByUpdated, sorts: true},
}

// viewCatalog renders the project list screen
func (m Model) viewCatalog() string {
	cs := m.CatalogState
	opts := cs.Options()
	counts := catalog.Summary(cs.Projects())

	title := m.styles.Title.Render("UGC " + m.Messages.Projects)
	summary := fmt.Sprintf("%d %s, %d %s (%d %s)  ·  status: %s  ·  sort: %s %s",
		counts.Active, m.Messages.Active,
		counts.Inactive, m.Messages.Inactive,
		counts.Total, m.Messages.Projects,
		opts.Status, opts.Sort.Key, opts.Sort.Direction)
	if opts.Search != "" {
		summary += "  ·  search: " + opts.Search
	}

	var body string
	visible := cs.Visible()
	switch {
	case cs.Status() == state.Failed:
		body = m.emptyState(m.Messages.LoadProjects)
	case cs.Status() == state.Loading && len(cs.Projects()) == 0:
		body = m.emptyState(m.Messages.Loading)
	case len(cs.Projects()) == 0:
		body = m.emptyState(m.Messages.NoProjects)
	case len(visible) == 0:
		body = m.emptyState(m.Messages.NoResults)
	default:
		body = m.catalogTable(visible, opts.Sort)
	}

	km := m.Config.KeyMappings
	bar := m.statusBar(
		km.Search+" search",
		km.CycleStatus+" status",
		km.SortName+km.SortCreated+km.SortUpdated+" sort",
		km.Toggle+" toggle",
		km.ViewDetails+" details",
		km.ShowHelp+" help",
		km.Quit+" quit",
	)
	if cs.Toggling() {
		bar = m.statusBar(m.Messages.Loading)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.infoLine(summary),
		"",
		body,
		"",
		bar,
	)
}

func (m Model) catalogTable(projects []*models.Project, sort catalog.SortState) string {
	headers := make([]string, len(catalogColumns))
	sortedCol := -1
	for i, c := range catalogColumns {
		headers[i] = c.title
		if c.sorts && c.key == sort.Key {
			headers[i] += sortMarker(sort.Direction)
			sortedCol = i
		}
	}

	selected := m.CatalogState.SelectedIndex()
	start, end := window(len(projects), selected, m.UiState.ContentHeight())

	rows := make([][]string, 0, end-start)
	for _, p := range projects[start:end] {
		status := m.Messages.Active
		if !p.Enabled {
			status = m.Messages.Inactive
		}
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			status,
			p.CreatedAt.DateString(),
			p.UpdatedAt.DateString(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow && col == sortedCol:
				return m.styles.Sorted
			case row == table.HeaderRow:
				return m.styles.Header
			case start+row == selected:
				return m.styles.Selected
			case col == 2 && projects[start+row].Enabled:
				return m.styles.Enabled.Padding(0, 1)
			case col == 2:
				return m.styles.Disabled.Padding(0, 1)
			}
			return m.styles.Normal
		})

	return t.String()
}
