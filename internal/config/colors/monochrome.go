package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Enabled:  "#FFFFFF",
		Disabled: "#808080",

		TableBorder: "#FFFFFF",
		HeaderFg:    "#FFFFFF",
		SortedFg:    "#FFFFFF",
		SelectedFg:  "#000000",
		SelectedBg:  "#D0D0D0",
		Placeholder: "#585858",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",

		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}
