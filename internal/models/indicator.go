package models

// Indicator is a measurable dimension tracked per time slot (attendance, sales, ...)
type Indicator struct {
	ID         int     `json:"id"`
	Identifier string  `json:"identifier"`
	Label      string  `json:"label"`
	LabelShort string  `json:"label_short"`
	Timeslots  int     `json:"timeslots"`
	Position   int     `json:"position"`
	Asset      *string `json:"asset,omitempty"`
}

// IndicatorCategory is a sub-partition of an indicator.
// Numeric values are keyed by the category ID.
type IndicatorCategory struct {
	ID         int     `json:"id"`
	Indicator  int     `json:"indicator"`
	Category   int     `json:"category"`
	Identifier string  `json:"identifier"`
	Label      string  `json:"label"`
	AssetType  *string `json:"asset_type,omitempty"`
	AssetValue *string `json:"asset_value,omitempty"`
	Color      string  `json:"color"`
	ColorDark  string  `json:"color_dark"`
}

// ProjectIndicatorDetail groups an indicator with its categories
type ProjectIndicatorDetail struct {
	Indicator  Indicator           `json:"indicator"`
	Categories []IndicatorCategory `json:"categories"`
}
