package handler

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ugcctl/internal/cli"
	"github.com/thenoetrevino/ugcctl/internal/export"
	"github.com/thenoetrevino/ugcctl/internal/testutil"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestParser parses args against a command carrying every flag kind.
// JSON output keeps usage errors off stderr.
func createTestParser(t *testing.T, args ...string) *FlagParser {
	t.Helper()

	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	cmd.Flags().Int("id", 0, "")
	cmd.Flags().Int("limit", 0, "")
	cmd.Flags().Int("hours", 0, "")
	cmd.Flags().String("format", "", "")
	cmd.Flags().String("search", "", "")
	cmd.Flags().Float64("max-value", 0, "")
	require.NoError(t, cmd.ParseFlags(args))

	return NewFlagParser(cmd, &cli.OutputFormatter{JSON: true})
}

// quietly runs fn with stdout captured so JSON errors stay out of test logs
func quietly(t *testing.T, fn func()) {
	t.Helper()
	_ = testutil.CaptureOutput(t, fn)
}

// ============================================================================
// ProjectID
// ============================================================================

func TestFlagParser_ProjectID(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     int
		wantExit int
	}{
		{"negative backend id", []string{"--id=-98349789"}, -98349789, cli.ExitSuccess},
		{"positive id", []string{"--id", "1235778731"}, 1235778731, cli.ExitSuccess},
		{"zero", []string{"--id", "0"}, 0, cli.ExitUsage},
		{"missing", nil, 0, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got int
				err error
			)
			quietly(t, func() {
				got, err = createTestParser(t, tt.args...).ProjectID("id")
			})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantExit, cli.ExitCodeOf(err))
		})
	}
}

func TestFlagParser_OptionalProjectID(t *testing.T) {
	id, err := createTestParser(t).OptionalProjectID("id")
	require.NoError(t, err)
	assert.Zero(t, id)
}

// ============================================================================
// Export flags
// ============================================================================

func TestFlagParser_Format(t *testing.T) {
	f, err := createTestParser(t, "--format", "JSON").Format("format")
	require.NoError(t, err)
	assert.Equal(t, export.JSON, f)

	quietly(t, func() {
		_, err = createTestParser(t, "--format", "xml").Format("format")
	})
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeOf(err))
}

func TestFlagParser_Hours(t *testing.T) {
	h, err := createTestParser(t, "--hours", "12").Hours("hours")
	require.NoError(t, err)
	assert.Equal(t, 12, h)

	quietly(t, func() {
		_, err = createTestParser(t, "--hours", "24").Hours("hours")
	})
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeOf(err))
}

// ============================================================================
// Misc
// ============================================================================

func TestFlagParser_String_Trims(t *testing.T) {
	s, err := createTestParser(t, "--search", "  nice ").String("search")
	require.NoError(t, err)
	assert.Equal(t, "nice", s)
}

func TestFlagParser_NonNegativeInt(t *testing.T) {
	var err error
	quietly(t, func() {
		_, err = createTestParser(t, "--limit=-1").NonNegativeInt("limit")
	})
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeOf(err))
}

func TestFlagParser_OptionalFloat(t *testing.T) {
	v, err := createTestParser(t, "--max-value", "99.5").OptionalFloat("max-value")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 99.5, *v)

	v, err = createTestParser(t).OptionalFloat("max-value")
	require.NoError(t, err)
	assert.Nil(t, v)
}
