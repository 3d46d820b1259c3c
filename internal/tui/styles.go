package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/ugcctl/internal/config"
)

// styles are built once from the configured color scheme
type styles struct {
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Normal      lipgloss.Style
	Header      lipgloss.Style
	Sorted      lipgloss.Style
	Selected    lipgloss.Style
	Placeholder lipgloss.Style
	Enabled     lipgloss.Style
	Disabled    lipgloss.Style
	Border      lipgloss.Style
	StatusBar   lipgloss.Style
	Modal       lipgloss.Style
	Search      lipgloss.Style
}

func newStyles(c config.ColorScheme) styles {
	return styles{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Title)).Bold(true),
		Subtle:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		Normal:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal)).Padding(0, 1),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.HeaderFg)).Bold(true).Padding(0, 1),
		Sorted:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.SortedFg)).Bold(true).Underline(true).Padding(0, 1),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.SelectedFg)).Background(lipgloss.Color(c.SelectedBg)).Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Placeholder)).Padding(0, 1),
		Enabled:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Enabled)),
		Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Disabled)),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.TableBorder)),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.StatusBarText)).
			Background(lipgloss.Color(c.StatusBarBg)).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Accent)).
			Padding(1, 2),
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)),
	}
}
