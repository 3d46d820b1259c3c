package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "project_42_data_6h.csv", FileName(42, CSV, 6))
	assert.Equal(t, "project_-1867723345_data_12h.json", FileName(-1867723345, JSON, 12))
}

func TestFileName_DoesNotValidateHours(t *testing.T) {
	// Callers validate; the name is built as given
	assert.Equal(t, "project_1_data_2h.csv", FileName(1, CSV, 2))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, CSV, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestValidHours(t *testing.T) {
	for _, h := range []int{1, 3, 6, 12} {
		assert.True(t, ValidHours(h), "hours %d", h)
	}
	for _, h := range []int{0, 2, 24, -1} {
		assert.False(t, ValidHours(h), "hours %d", h)
	}
}

func TestChoices_Order(t *testing.T) {
	var keys []string
	for _, c := range Choices() {
		keys = append(keys, c.String())
	}
	assert.Equal(t, []string{
		"csv-1", "csv-3", "csv-6", "csv-12",
		"json-1", "json-3", "json-6", "json-12",
	}, keys)
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    Choice
		wantErr bool
	}{
		{"csv-6", Choice{Format: CSV, Hours: 6}, false},
		{"json-12", Choice{Format: JSON, Hours: 12}, false},
		{"csv-2", Choice{}, true},
		{"pdf-1", Choice{}, true},
		{"csv", Choice{}, true},
		{"json-x", Choice{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChoice(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChoice_Label(t *testing.T) {
	assert.Equal(t, "CSV (6h)", Choice{Format: CSV, Hours: 6}.Label())
	assert.Equal(t, "JSON (1h)", Choice{Format: JSON, Hours: 1}.Label())
}
