package timeslots

import (
	"slices"
	"strconv"

	"github.com/thenoetrevino/ugcctl/internal/models"
)

// Columns returns the union of category IDs present across the records,
// deduplicated and in ascending order.
func Columns(values []models.NumericValue) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, v := range values {
		for id := range v.Values {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	if ids == nil {
		ids = []int{}
	}
	return ids
}

// ColumnLabel is the positional header of the n-th indicator column (0-based input)
func ColumnLabel(position int) string {
	return "Indicator " + strconv.Itoa(position+1)
}

// Cell renders one table cell; absent keys render as Placeholder, zero does not
func Cell(v models.NumericValue, categoryID int) string {
	val, ok := v.Values[categoryID]
	if !ok {
		return Placeholder
	}
	return FormatValue(val)
}

// Table is the derived detail table
type Table struct {
	Rows    []models.NumericValue
	Columns []int
}

// Apply filters then sorts, and derives the columns from the filtered records
func Apply(values []models.NumericValue, filter string, state SortState) Table {
	filtered := Filter(values, filter)
	return Table{
		Rows:    Sort(filtered, state),
		Columns: Columns(filtered),
	}
}

// Header returns the full header row: begin, end, then one label per column
func (t Table) Header() []string {
	header := []string{"Time begin", "Time end"}
	for i := range t.Columns {
		header = append(header, ColumnLabel(i))
	}
	return header
}

// Cells returns the rendered cells of row i
func (t Table) Cells(i int) []string {
	row := t.Rows[i]
	cells := []string{row.TimeBegin, row.TimeEnd}
	for _, id := range t.Columns {
		cells = append(cells, Cell(row, id))
	}
	return cells
}

// ColumnKey returns the sort key of header column i (0 and 1 are the time columns)
func (t Table) ColumnKey(i int) (SortKey, bool) {
	switch {
	case i == 0:
		return TimeBeginKey, true
	case i == 1:
		return TimeEndKey, true
	case i-2 < len(t.Columns) && i >= 2:
		return IndicatorKey(t.Columns[i-2]), true
	}
	return SortKey{}, false
}
