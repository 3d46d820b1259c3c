package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/ugcctl/internal/config"
	"github.com/thenoetrevino/ugcctl/internal/tui/state"
)

// MaxWidth caps the width of a notification banner
const MaxWidth = 48

// Render renders a notification banner based on severity level.
// Long messages (export paths) are wrapped to maxWidth.
func Render(colors config.ColorScheme, severity Severity, message string, maxWidth int) string {
	style := severity.style(colors)

	if maxWidth <= 0 || maxWidth > MaxWidth {
		maxWidth = MaxWidth
	}
	message = wordwrap.String(message, maxWidth)

	headerText := style.icon + " " + style.title
	width := max(lipgloss.Width(headerText), lipgloss.Width(message))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(width)

	if severity == Info {
		headerStyle = headerStyle.Background(lipgloss.Color(style.background))
	}

	header := headerStyle.Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(width).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(colors config.ColorScheme, n state.Notification, maxWidth int) string {
	return Render(colors, FromLevel(n.Level), n.Message, maxWidth)
}
