package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/ugcctl/internal/export"
)

// CreateExportForm creates the export picker: one entry per format and window.
// choice receives the compact key of the selection (see export.ParseChoice).
func CreateExportForm(projectName string, choice *string) *huh.Form {
	choices := export.Choices()
	options := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		options = append(options, huh.NewOption(c.Label(), c.String()))
	}

	sel := huh.NewSelect[string]().
		Key("choice").
		Title("Export " + projectName).
		Description("Aggregation window and file format").
		Options(options...).
		Height(len(options) + 2).
		Value(choice)

	return huh.NewForm(huh.NewGroup(sel)).WithShowHelp(false)
}
