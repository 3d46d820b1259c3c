package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevRow    string `yaml:"prev_row"`
	NextRow    string `yaml:"next_row"`
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	Back       string `yaml:"back"`

	// Catalog
	Search      string `yaml:"search"`
	CycleStatus string `yaml:"cycle_status"`
	SortName    string `yaml:"sort_name"`
	SortCreated string `yaml:"sort_created"`
	SortUpdated string `yaml:"sort_updated"`
	Toggle      string `yaml:"toggle"`
	ViewDetails string `yaml:"view_details"`

	// Detail
	SortColumn string `yaml:"sort_column"`
	Export     string `yaml:"export"`
	CopyPath   string `yaml:"copy_path"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevRow:    "k",
		NextRow:    "j",
		PrevColumn: "h",
		NextColumn: "l",
		Back:       "esc",

		Search:      "/",
		CycleStatus: "f",
		SortName:    "1",
		SortCreated: "2",
		SortUpdated: "3",
		Toggle:      "t",
		ViewDetails: "enter",

		SortColumn: "s",
		Export:     "e",
		CopyPath:   "y",

		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.PrevRow, &k.NextRow, &k.PrevColumn, &k.NextColumn, &k.Back,
		&k.Search, &k.CycleStatus, &k.SortName, &k.SortCreated, &k.SortUpdated, &k.Toggle, &k.ViewDetails,
		&k.SortColumn, &k.Export, &k.CopyPath,
		&k.Reload, &k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	dst := k.fields()
	for i, src := range defaults.fields() {
		if *dst[i] == "" {
			*dst[i] = *src
		}
	}
}
