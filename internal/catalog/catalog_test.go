package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ugcctl/internal/models"
)

func project(id int, name string, enabled bool, created string) *models.Project {
	ts, err := models.ParseTimestamp(created)
	if err != nil {
		panic(err)
	}
	return &models.Project{
		ID:        id,
		Name:      name,
		Enabled:   enabled,
		CreatedAt: ts,
		UpdatedAt: models.NewTimestamp(time.Date(2025, 6, 15, 18, 34, 37, 0, time.UTC)),
	}
}

func names(projects []*models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Name)
	}
	return out
}

func fixture() []*models.Project {
	return []*models.Project{
		project(1, "UGC-Nice", true, "2025-01-12T12:30:00"),
		project(2, "UGC-Paris", true, "2024-10-09T09:30:00"),
		project(3, "UGC-Bordeaux", false, "2023-11-05T07:30:00"),
		project(4, "UGC-Nantes", true, "2025-04-20T10:30:00"),
		project(5, "UGC-Marseille", false, "2024-03-05T06:30:00"),
	}
}

func TestFilterStatus_KeepsSubsetInOrder(t *testing.T) {
	input := fixture()

	tests := []struct {
		status StatusFilter
		want   []string
	}{
		{StatusAll, []string{"UGC-Nice", "UGC-Paris", "UGC-Bordeaux", "UGC-Nantes", "UGC-Marseille"}},
		{StatusActive, []string{"UGC-Nice", "UGC-Paris", "UGC-Nantes"}},
		{StatusInactive, []string{"UGC-Bordeaux", "UGC-Marseille"}},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			got := FilterStatus(input, tt.status)
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("FilterStatus(%s) mismatch (-want +got):\n%s", tt.status, diff)
			}
		})
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	got := Search(fixture(), "pAr")
	assert.Equal(t, []string{"UGC-Paris"}, names(got))

	got = Search(fixture(), "")
	assert.Len(t, got, 5)

	got = Search(fixture(), "lyon")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSort_ScenarioNameToggle(t *testing.T) {
	input := []*models.Project{
		project(1, "Zeta", true, "2025-01-01"),
		project(2, "Alpha", true, "2025-01-02"),
		project(3, "Mid", true, "2025-01-03"),
	}

	state := SortState{Key: SortByName, Direction: Asc}
	got := Apply(input, Options{Sort: state})
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names(got))

	state = state.Toggle(SortByName)
	got = Apply(input, Options{Sort: state})
	assert.Equal(t, []string{"Zeta", "Mid", "Alpha"}, names(got))

	// input untouched
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, names(input))
}

func TestSort_Idempotent(t *testing.T) {
	state := SortState{Key: SortByCreated, Direction: Asc}
	once := Sort(fixture(), state)
	twice := Sort(once, state)
	assert.Equal(t, names(once), names(twice))
	assert.Equal(t, []string{"UGC-Bordeaux", "UGC-Marseille", "UGC-Paris", "UGC-Nice", "UGC-Nantes"}, names(once))
}

func TestSort_DoubleToggleRestoresOrder(t *testing.T) {
	state := SortState{Key: SortByName, Direction: Asc}
	original := names(Sort(fixture(), state))

	state = state.Toggle(SortByName).Toggle(SortByName)
	assert.Equal(t, Asc, state.Direction)
	assert.Equal(t, original, names(Sort(fixture(), state)))
}

func TestSort_StableOnTies(t *testing.T) {
	// all share the same UpdatedAt
	input := fixture()
	for _, dir := range []Direction{Asc, Desc} {
		got := Sort(input, SortState{Key: SortByUpdated, Direction: dir})
		assert.Equal(t, names(input), names(got), "ties must keep prior order (%s)", dir)
	}
}

func TestSortState_Toggle(t *testing.T) {
	s := SortState{Key: SortByName, Direction: Asc}

	s = s.Toggle(SortByName)
	assert.Equal(t, SortState{Key: SortByName, Direction: Desc}, s)

	s = s.Toggle(SortByCreated)
	assert.Equal(t, SortState{Key: SortByCreated, Direction: Asc}, s, "new key resets to ascending")

	s = s.Toggle(SortByCreated).Toggle(SortByUpdated)
	assert.Equal(t, SortState{Key: SortByUpdated, Direction: Asc}, s)
}

func TestApply_FilterThenSearchThenSort(t *testing.T) {
	got := Apply(fixture(), Options{
		Search: "n",
		Status: StatusActive,
		Sort:   SortState{Key: SortByName, Direction: Desc},
	})
	assert.Equal(t, []string{"UGC-Nice", "UGC-Nantes"}, names(got))

	empty := Apply(nil, Options{})
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestParse(t *testing.T) {
	key, err := ParseSortKey("created_at")
	require.NoError(t, err)
	assert.Equal(t, SortByCreated, key)
	assert.Equal(t, "create_on", key.String())

	_, err = ParseSortKey("priority")
	assert.Error(t, err)

	dir, err := ParseDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, Desc, dir)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)

	status, err := ParseStatusFilter("inactive")
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, status)
	assert.Equal(t, StatusAll, status.Next())

	_, err = ParseStatusFilter("archived")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, Counts{Active: 3, Inactive: 2, Total: 5}, Summary(fixture()))
	assert.Equal(t, Counts{}, Summary(nil))
}
