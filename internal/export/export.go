// Package export holds the pure rules of the export trigger: formats,
// aggregation windows, file naming and the picker choices.
package export

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Format is the export file format
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

// Formats lists the supported formats in picker order
var Formats = []Format{CSV, JSON}

// ParseFormat validates a user supplied format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid format '%s' (must be: csv, json)", s)
}

// Extension is the file extension, without the dot
func (f Format) Extension() string {
	return string(f)
}

// AllowedHours are the aggregation windows the backend accepts
var AllowedHours = []int{1, 3, 6, 12}

// ValidHours reports whether h is an accepted aggregation window
func ValidHours(h int) bool {
	return slices.Contains(AllowedHours, h)
}

// FileName is the name the exported file is saved under
func FileName(projectID int, format Format, hours int) string {
	return fmt.Sprintf("project_%d_data_%dh.%s", projectID, hours, format.Extension())
}

// Choice is one entry of the export picker
type Choice struct {
	Format Format
	Hours  int
}

// Choices returns every format × window combination, csv first
func Choices() []Choice {
	out := make([]Choice, 0, len(Formats)*len(AllowedHours))
	for _, f := range Formats {
		for _, h := range AllowedHours {
			out = append(out, Choice{Format: f, Hours: h})
		}
	}
	return out
}

// String is the compact key of the choice, e.g. "csv-6"
func (c Choice) String() string {
	return string(c.Format) + "-" + strconv.Itoa(c.Hours)
}

// Label is the human readable picker entry, e.g. "CSV (6h)"
func (c Choice) Label() string {
	return fmt.Sprintf("%s (%dh)", strings.ToUpper(string(c.Format)), c.Hours)
}

// ParseChoice parses the compact "<format>-<hours>" key
func ParseChoice(s string) (Choice, error) {
	f, h, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Choice{}, fmt.Errorf("invalid export choice '%s' (expected <format>-<hours>)", s)
	}

	format, err := ParseFormat(f)
	if err != nil {
		return Choice{}, err
	}

	hours, err := strconv.Atoi(h)
	if err != nil || !ValidHours(hours) {
		return Choice{}, fmt.Errorf("invalid aggregation window '%s' (must be: 1, 3, 6, 12)", h)
	}

	return Choice{Format: format, Hours: hours}, nil
}
