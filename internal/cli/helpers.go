package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/export"
)

// ProjectIDFlag reads a required project id flag. Backend ids may be negative; 0 is invalid.
func ProjectIDFlag(cmd *cobra.Command, name string) (int, error) {
	if !cmd.Flags().Changed(name) {
		return 0, fmt.Errorf("--%s is required", name)
	}
	id, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", name, err)
	}
	if id == 0 {
		return 0, errors.New("project id cannot be 0")
	}
	return id, nil
}

// OptionalFloat returns a pointer to the flag value, or nil when the flag was not set
func OptionalFloat(cmd *cobra.Command, name string) (*float64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", name, err)
	}
	return &v, nil
}

// ParseHours validates an aggregation window
func ParseHours(h int) (int, error) {
	if !export.ValidHours(h) {
		return 0, fmt.Errorf("invalid hours %d (must be: 1, 3, 6, 12)", h)
	}
	return h, nil
}
