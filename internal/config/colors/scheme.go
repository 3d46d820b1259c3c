package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Project status
	Enabled  string `yaml:"enabled"`
	Disabled string `yaml:"disabled"`

	// Tables
	TableBorder string `yaml:"table_border"`
	HeaderFg    string `yaml:"header_fg"`
	SortedFg    string `yaml:"sorted_fg"` // header of the active sort column
	SelectedFg  string `yaml:"selected_fg"`
	SelectedBg  string `yaml:"selected_bg"`
	Placeholder string `yaml:"placeholder"` // absent measurement

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot so merge and defaults stay in sync
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Enabled, &c.Disabled,
		&c.TableBorder, &c.HeaderFg, &c.SortedFg, &c.SelectedFg, &c.SelectedBg, &c.Placeholder,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	dst := c.fields()
	for i, src := range preset.fields() {
		if *dst[i] == "" {
			*dst[i] = *src
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	dst := c.fields()
	for i, src := range other.fields() {
		if *src != "" {
			*dst[i] = *src
		}
	}
}
