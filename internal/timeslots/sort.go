package timeslots

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/thenoetrevino/ugcctl/internal/catalog"
	"github.com/thenoetrevino/ugcctl/internal/models"
)

const indicatorPrefix = "indicator_"

// SortField identifies the kind of column a SortKey targets
type SortField int

const (
	SortByTimeBegin SortField = iota
	SortByTimeEnd
	SortByIndicator
	sortUnknown
)

// SortKey is a detail table column: time_begin, time_end or indicator_<categoryID>
type SortKey struct {
	Field      SortField
	CategoryID int
}

// TimeBeginKey is the default sort column
var TimeBeginKey = SortKey{Field: SortByTimeBegin}

// TimeEndKey sorts by slot end
var TimeEndKey = SortKey{Field: SortByTimeEnd}

// IndicatorKey sorts by a category's measurement
func IndicatorKey(categoryID int) SortKey {
	return SortKey{Field: SortByIndicator, CategoryID: categoryID}
}

// String returns the wire spelling of the key
func (k SortKey) String() string {
	switch k.Field {
	case SortByTimeBegin:
		return "time_begin"
	case SortByTimeEnd:
		return "time_end"
	case SortByIndicator:
		return indicatorPrefix + strconv.Itoa(k.CategoryID)
	}
	return "unknown"
}

// ParseSortKey parses time_begin, time_end or indicator_<id> (ids may be negative)
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "time_begin":
		return TimeBeginKey, nil
	case "time_end":
		return TimeEndKey, nil
	}

	if rest, ok := strings.CutPrefix(s, indicatorPrefix); ok {
		id, err := strconv.Atoi(rest)
		if err != nil {
			return SortKey{Field: sortUnknown}, fmt.Errorf("invalid indicator sort key '%s'", s)
		}
		return IndicatorKey(id), nil
	}

	return SortKey{Field: sortUnknown}, fmt.Errorf("invalid sort key '%s' (must be: time_begin, time_end, indicator_<id>)", s)
}

// SortState is the (column, direction) pair of the detail table
type SortState struct {
	Key       SortKey
	Direction catalog.Direction
}

// DefaultSort orders by slot start, ascending
func DefaultSort() SortState {
	return SortState{Key: TimeBeginKey, Direction: catalog.Asc}
}

// Toggle applies a header selection: the same column flips the direction,
// another column resets it to ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		return SortState{Key: key, Direction: s.Direction.Flip()}
	}
	return SortState{Key: key, Direction: catalog.Asc}
}

// Sort returns a stably sorted copy.
// Missing indicator values compare as 0; unknown keys keep the order.
func Sort(values []models.NumericValue, state SortState) []models.NumericValue {
	out := slices.Clone(values)
	if out == nil {
		out = []models.NumericValue{}
	}
	slices.SortStableFunc(out, func(a, b models.NumericValue) int {
		c := compare(a, b, state.Key)
		if state.Direction == catalog.Desc {
			return -c
		}
		return c
	})
	return out
}

func compare(a, b models.NumericValue, key SortKey) int {
	switch key.Field {
	case SortByTimeBegin:
		return strings.Compare(a.TimeBegin, b.TimeBegin)
	case SortByTimeEnd:
		return strings.Compare(a.TimeEnd, b.TimeEnd)
	case SortByIndicator:
		av := a.Values[key.CategoryID]
		bv := b.Values[key.CategoryID]
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}
