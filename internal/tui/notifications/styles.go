package notifications

import "github.com/thenoetrevino/ugcctl/internal/config"

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func (s Severity) style(colors config.ColorScheme) style {
	switch s {
	case Warning:
		return style{
			icon:             "⚠",
			title:            "Warning",
			foreground:       colors.WarningFg,
			background:       colors.WarningBg,
			borderForeground: colors.WarningBg,
		}
	case Error:
		return style{
			icon:             "✕",
			title:            "Error",
			foreground:       colors.ErrorFg,
			background:       colors.ErrorBg,
			borderForeground: colors.ErrorBg,
		}
	default:
		return style{
			icon:             "🔔",
			title:            "Info",
			foreground:       colors.InfoFg,
			background:       colors.InfoBg,
			borderForeground: colors.InfoBg,
		}
	}
}
