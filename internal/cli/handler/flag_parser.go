// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ugcctl/internal/cli"
	"github.com/thenoetrevino/ugcctl/internal/export"
)

// FlagParser provides common flag extraction patterns.
// Every error it returns has already been reported and carries ExitUsage or ExitValidation.
type FlagParser struct {
	cmd       *cobra.Command
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, formatter *cli.OutputFormatter) *FlagParser {
	return &FlagParser{
		cmd:       cmd,
		formatter: formatter,
	}
}

func (p *FlagParser) usage(err error) error {
	if fmtErr := p.formatter.Error("USAGE_ERROR", err.Error()); fmtErr != nil {
		return cli.Exit(cli.ExitUsage, fmt.Errorf("%w (%v)", err, fmtErr))
	}
	return cli.Exit(cli.ExitUsage, err)
}

// ProjectID extracts a required, non-zero project ID
func (p *FlagParser) ProjectID(flagName string) (int, error) {
	id, err := cli.ProjectIDFlag(p.cmd, flagName)
	if err != nil {
		return 0, p.usage(err)
	}
	return id, nil
}

// OptionalProjectID returns 0 when the flag is absent
func (p *FlagParser) OptionalProjectID(flagName string) (int, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return 0, nil
	}
	return p.ProjectID(flagName)
}

// String extracts an optional string flag, trimmed
func (p *FlagParser) String(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", p.usage(fmt.Errorf("failed to parse %s flag: %w", flagName, err))
	}
	return strings.TrimSpace(value), nil
}

// NonNegativeInt extracts an int flag that may not be negative
func (p *FlagParser) NonNegativeInt(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, p.usage(fmt.Errorf("failed to parse %s flag: %w", flagName, err))
	}
	if value < 0 {
		return 0, p.formatter.Usage("VALIDATION_ERROR", fmt.Errorf("%s cannot be negative", flagName))
	}
	return value, nil
}

// OptionalFloat extracts a float flag, nil when it was not given
func (p *FlagParser) OptionalFloat(flagName string) (*float64, error) {
	v, err := cli.OptionalFloat(p.cmd, flagName)
	if err != nil {
		return nil, p.usage(err)
	}
	return v, nil
}

// Format extracts and validates an export format flag
func (p *FlagParser) Format(flagName string) (export.Format, error) {
	value, err := p.String(flagName)
	if err != nil {
		return "", err
	}
	f, err := export.ParseFormat(value)
	if err != nil {
		return "", p.formatter.Usage("VALIDATION_ERROR", err)
	}
	return f, nil
}

// Hours extracts and validates an aggregation window flag
func (p *FlagParser) Hours(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, p.usage(fmt.Errorf("failed to parse %s flag: %w", flagName, err))
	}
	h, err := cli.ParseHours(value)
	if err != nil {
		return 0, p.formatter.Usage("VALIDATION_ERROR", err)
	}
	return h, nil
}

// Validation reports a flag value rejected by a domain parser
func (p *FlagParser) Validation(err error) error {
	return p.formatter.Usage("VALIDATION_ERROR", err)
}
