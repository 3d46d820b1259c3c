// Package catalog derives the visible project list from the fetched one.
//
// Everything here is pure: the caller owns the state and the input slice is
// never modified.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/ugcctl/internal/models"
)

// StatusFilter restricts the list by enabled state
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusActive
	StatusInactive
)

// String returns the flag/config spelling of the filter
func (f StatusFilter) String() string {
	switch f {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	default:
		return "all"
	}
}

// Next cycles all -> active -> inactive -> all
func (f StatusFilter) Next() StatusFilter {
	switch f {
	case StatusAll:
		return StatusActive
	case StatusActive:
		return StatusInactive
	default:
		return StatusAll
	}
}

// Keep reports whether a project passes the filter
func (f StatusFilter) Keep(p *models.Project) bool {
	switch f {
	case StatusActive:
		return p.Enabled
	case StatusInactive:
		return !p.Enabled
	default:
		return true
	}
}

// ParseStatusFilter parses "all", "active" or "inactive"
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return StatusAll, nil
	case "active":
		return StatusActive, nil
	case "inactive":
		return StatusInactive, nil
	}
	return StatusAll, fmt.Errorf("invalid status '%s' (must be: all, active, inactive)", s)
}

// SortKey is the project field used for ordering
type SortKey int

const (
	SortByName SortKey = iota
	SortByCreated
	SortByUpdated
)

// String returns the backend spelling of the key (sort_by query parameter)
func (k SortKey) String() string {
	switch k {
	case SortByCreated:
		return "create_on"
	case SortByUpdated:
		return "update_on"
	default:
		return "name"
	}
}

// ParseSortKey accepts the backend names and the legacy created_at/updated_at aliases
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortByName, nil
	case "create_on", "created_at", "created":
		return SortByCreated, nil
	case "update_on", "updated_at", "updated":
		return SortByUpdated, nil
	}
	return SortByName, fmt.Errorf("invalid sort key '%s' (must be: name, create_on, update_on)", s)
}

// Direction is the sort direction
type Direction int

const (
	Asc Direction = iota
	Desc
)

// String returns "asc" or "desc"
func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// ParseDirection parses "asc" or "desc"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Asc, fmt.Errorf("invalid order '%s' (must be: asc, desc)", s)
}

// SortState is the (key, direction) pair driven by header clicks
type SortState struct {
	Key       SortKey
	Direction Direction
}

// Toggle applies a header selection: the same key flips the direction,
// a new key resets it to ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		return SortState{Key: key, Direction: s.Direction.Flip()}
	}
	return SortState{Key: key, Direction: Asc}
}

// Options is the full derived-list state of a catalog view
type Options struct {
	Search string
	Status StatusFilter
	Sort   SortState
}

// Apply filters by status, then by name search, then stable-sorts.
// The result is a new slice; an empty result is non-nil.
func Apply(projects []*models.Project, opts Options) []*models.Project {
	out := FilterStatus(projects, opts.Status)
	out = Search(out, opts.Search)
	return Sort(out, opts.Sort)
}

// FilterStatus keeps the projects matching the status filter, in order
func FilterStatus(projects []*models.Project, status StatusFilter) []*models.Project {
	out := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if status.Keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Search keeps the projects whose name contains the query, case-insensitively
func Search(projects []*models.Project, query string) []*models.Project {
	needle := strings.ToLower(query)
	out := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if needle == "" || strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a stably sorted copy
func Sort(projects []*models.Project, state SortState) []*models.Project {
	out := slices.Clone(projects)
	if out == nil {
		out = []*models.Project{}
	}
	slices.SortStableFunc(out, func(a, b *models.Project) int {
		c := compare(a, b, state.Key)
		if state.Direction == Desc {
			return -c
		}
		return c
	})
	return out
}

// compare is a three-way comparator on a single field
func compare(a, b *models.Project, key SortKey) int {
	switch key {
	case SortByCreated:
		return threeWay(a.CreatedAt.Before(b.CreatedAt.Time), a.CreatedAt.After(b.CreatedAt.Time))
	case SortByUpdated:
		return threeWay(a.UpdatedAt.Before(b.UpdatedAt.Time), a.UpdatedAt.After(b.UpdatedAt.Time))
	default:
		return threeWay(a.Name < b.Name, a.Name > b.Name)
	}
}

func threeWay(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

// Counts summarizes a project list for footers
type Counts struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Total    int `json:"total"`
}

// Summary counts active and inactive projects
func Summary(projects []*models.Project) Counts {
	var c Counts
	for _, p := range projects {
		if p.Enabled {
			c.Active++
		} else {
			c.Inactive++
		}
	}
	c.Total = len(projects)
	return c
}
