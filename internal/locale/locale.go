// Package locale holds the user-facing messages of the terminal UI.
// Failures are shown as one generic message per view; details go to the log.
package locale

import "fmt"

// Catalog is the set of messages for one language
type Catalog struct {
	Lang string

	// Errors
	LoadProjects string
	LoadDetails  string
	Toggle       string
	exportFmt    string
	Disabled     string

	// Empty states
	NoProjects string
	NoResults  string
	NoValues   string
	noMatchFmt string

	// Status
	Loading       string
	Exporting     string
	exportDoneFmt string
	toggledFmt    string
	Copied        string
	CopyFailed    string

	// Labels
	Active       string
	Inactive     string
	Projects     string
	Indicators   string
	indicatorFmt string
	resultsFmt   string
}

// Export is the failure message of an export in the given format
func (c *Catalog) Export(format string) string {
	return fmt.Sprintf(c.exportFmt, format)
}

// ExportDone confirms a saved export
func (c *Catalog) ExportDone(path string) string {
	return fmt.Sprintf(c.exportDoneFmt, path)
}

// NoMatches is the empty state of a filter that keeps no row
func (c *Catalog) NoMatches(filter string) string {
	return fmt.Sprintf(c.noMatchFmt, filter)
}

// Results counts the rows kept by a filter
func (c *Catalog) Results(n int, filter string) string {
	return fmt.Sprintf(c.resultsFmt, n, filter)
}

// Indicator describes one available indicator and its day partition
func (c *Catalog) Indicator(label string, timeslots int) string {
	return fmt.Sprintf(c.indicatorFmt, label, timeslots)
}

// Toggled confirms a toggle; enabled is the new state
func (c *Catalog) Toggled(name string, enabled bool) string {
	state := c.Inactive
	if enabled {
		state = c.Active
	}
	return fmt.Sprintf(c.toggledFmt, name, state)
}

var english = Catalog{
	Lang: "en",

	LoadProjects: "Error loading projects",
	LoadDetails:  "Error loading project details",
	Toggle:       "Error changing project status",
	exportFmt:    "Error exporting %s",
	Disabled:     "This project is disabled",

	NoProjects: "No projects",
	NoResults:  "No project matches the current filters",
	NoValues:   "No data",
	noMatchFmt: `No results for "%s"`,

	Loading:       "Loading...",
	Exporting:     "Exporting...",
	exportDoneFmt: "Saved %s",
	toggledFmt:    "%s is now %s",
	Copied:        "Path copied to clipboard",
	CopyFailed:    "Could not copy to clipboard",

	Active:   "active",
	Inactive: "inactive",
	Projects:     "projects",
	Indicators:   "Available indicators",
	indicatorFmt: "%s (%d time slots)",
	resultsFmt:   `%d result(s) for "%s"`,
}

var french = Catalog{
	Lang: "fr",

	LoadProjects: "Erreur lors du chargement des projets",
	LoadDetails:  "Erreur lors du chargement des détails du projet",
	Toggle:       "Erreur lors du changement de statut du projet",
	exportFmt:    "Erreur lors de l'export %s",
	Disabled:     "Ce projet est désactivé",

	NoProjects: "Aucun projet",
	NoResults:  "Aucun projet ne correspond aux filtres",
	NoValues:   "Aucune donnée",
	noMatchFmt: `Aucun résultat trouvé pour "%s"`,

	Loading:       "Chargement...",
	Exporting:     "Export en cours...",
	exportDoneFmt: "Enregistré : %s",
	toggledFmt:    "%s est maintenant %s",
	Copied:        "Chemin copié dans le presse-papiers",
	CopyFailed:    "Impossible de copier dans le presse-papiers",

	Active:   "actif",
	Inactive: "inactif",
	Projects:     "projets",
	Indicators:   "Indicateurs disponibles",
	indicatorFmt: "%s (%d créneaux de temps)",
	resultsFmt:   `%d résultat(s) trouvé(s) pour "%s"`,
}

// For returns the catalog of a language, English when unknown
func For(lang string) *Catalog {
	if lang == "fr" {
		c := french
		return &c
	}
	c := english
	return &c
}
