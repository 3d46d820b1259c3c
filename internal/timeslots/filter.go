// Package timeslots derives the detail table (rows = time slots,
// columns = indicator categories) from a project's numeric values.
package timeslots

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/thenoetrevino/ugcctl/internal/models"
)

// Placeholder is rendered for a category absent from a record
const Placeholder = "-"

// leadingNumber is the longest numeric prefix of a filter term ("09:00" reads as 9)
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// FormatValue renders a measurement the way it is searched and displayed.
// Very large and very small magnitudes use exponent notation ("1e+21", "1.5e-7").
func FormatValue(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + exp
}

// ParseLeadingNumber reads the number a term starts with, ignoring the rest
func ParseLeadingNumber(term string) (float64, bool) {
	prefix := leadingNumber.FindString(strings.TrimSpace(term))
	if prefix == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Matches reports whether a record matches the free-text filter.
//
// The trimmed, lower-cased term matches when it is found in time_begin,
// in time_end, in the string form of any value, or when the number it
// starts with equals any value ("15 spectateurs" finds 15).
func Matches(v models.NumericValue, filter string) bool {
	term := strings.ToLower(strings.TrimSpace(filter))
	if term == "" {
		return true
	}

	if strings.Contains(strings.ToLower(v.TimeBegin), term) ||
		strings.Contains(strings.ToLower(v.TimeEnd), term) {
		return true
	}

	for _, val := range v.Values {
		if strings.Contains(strings.ToLower(FormatValue(val)), term) {
			return true
		}
	}

	// Exact numeric match ("15.0" finds 15 even though "15" does not contain "15.0")
	if n, ok := ParseLeadingNumber(term); ok {
		for _, val := range v.Values {
			if val == n {
				return true
			}
		}
	}

	return false
}

// Filter keeps the matching records in their original order
func Filter(values []models.NumericValue, filter string) []models.NumericValue {
	out := make([]models.NumericValue, 0, len(values))
	for _, v := range values {
		if Matches(v, filter) {
			out = append(out, v)
		}
	}
	return out
}
