package models

// TimeSlot describes one slot of an indicator's day partition
type TimeSlot struct {
	ID        int    `json:"id"`
	Begin     string `json:"begin"`
	End       string `json:"end"`
	Index     int    `json:"index"`
	Timeslots int    `json:"timeslots"`
}

// NumericValue holds the measurements of one time slot.
// Values maps category ID to measurement; the key set varies between records
// and a missing key means "no measurement", not zero.
type NumericValue struct {
	TimeBegin string          `json:"time_begin"`
	TimeEnd   string          `json:"time_end"`
	Date      Timestamp       `json:"date"`
	Values    map[int]float64 `json:"values"`
}

// Value returns the measurement for a category and whether it is present
func (v NumericValue) Value(categoryID int) (float64, bool) {
	val, ok := v.Values[categoryID]
	return val, ok
}

// ProjectValues is the payload of the project values endpoint
type ProjectValues struct {
	Project    Project        `json:"project"`
	Indicators []Indicator    `json:"indicators"`
	TimeSlots  []TimeSlot     `json:"time_slots"`
	Values     []NumericValue `json:"values"`
}
