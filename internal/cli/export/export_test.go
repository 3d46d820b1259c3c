package export

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ugcctl/internal/cli"
	"github.com/thenoetrevino/ugcctl/internal/testutil"
	cliutil "github.com/thenoetrevino/ugcctl/internal/testutil/cli"
)

const parisID = -98349789

func TestExportCommand_WritesFile(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)
	dir := t.TempDir()

	output, err := cliutil.ExecuteCLICommand(t, testApp, ExportCmd(), []string{
		"--id", strconv.Itoa(parisID), "--format", "csv", "--hours", "6", "--dir", dir, "--quiet",
	})
	require.NoError(t, err)

	path := strings.TrimSpace(output)
	assert.Equal(t, filepath.Join(dir, "project_-98349789_data_6h.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "temps_debut,temps_fin,project"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file may be left behind")
}

func TestExportCommand_DefaultDirAndJSON(t *testing.T) {
	backend, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, ExportCmd(), []string{
		"--id", strconv.Itoa(parisID), "--format", "json", "--hours", "12", "--json",
	})
	require.NoError(t, err)

	rec := testutil.ParseJSON(t, output)["export"].(map[string]interface{})
	assert.Equal(t, "project_-98349789_data_12h.json", rec["file_name"])
	assert.Equal(t, testApp.Config.Export.Dir, filepath.Dir(rec["path"].(string)))
	assert.Equal(t, "aggregate_hours=12", backend.LastQuery(testutil.RouteExport))
}

func TestExportCommand_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantExit  int
		wantCalls int
	}{
		{"unsupported hours", []string{"--id", "1235778731", "--hours", "24"}, cli.ExitValidation, 0},
		{"unsupported format", []string{"--id", "1235778731", "--format", "xlsx"}, cli.ExitValidation, 0},
		{"missing id", []string{"--format", "csv"}, cli.ExitUsage, 0},
		{"inactive project", []string{"--id", "-621102575"}, cli.ExitNotFound, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, testApp := cliutil.SetupCLITest(t)

			_, err := cliutil.ExecuteCLICommand(t, testApp, ExportCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, cli.ExitCodeOf(err))
			assert.Equal(t, tt.wantCalls, backend.Calls(testutil.RouteExport))

			entries, err := os.ReadDir(testApp.Config.Export.Dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "a failed export must not leave a file")
		})
	}
}

func TestHistoryCommand(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	for _, args := range [][]string{
		{"--id", strconv.Itoa(parisID), "--hours", "1"},
		{"--id", strconv.Itoa(parisID), "--hours", "3"},
		{"--id", "1235778731", "--hours", "6"},
	} {
		_, err := cliutil.ExecuteCLICommand(t, testApp, ExportCmd(), append(args, "--quiet"))
		require.NoError(t, err)
	}

	output, err := cliutil.ExecuteCLICommand(t, testApp, ExportCmd(), []string{"history", "--id", strconv.Itoa(parisID), "--json"})
	require.NoError(t, err)

	exports := testutil.ParseJSON(t, output)["exports"].([]interface{})
	require.Len(t, exports, 2)
	assert.Equal(t, "project_-98349789_data_3h.csv", exports[0].(map[string]interface{})["file_name"])

	output, err = cliutil.ExecuteCLICommand(t, testApp, ExportCmd(), []string{"history", "--limit", "1", "--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(output), 1)

	output, err = cliutil.ExecuteCLICommand(t, testApp, ExportCmd(), []string{"history"})
	require.NoError(t, err)
	assert.Contains(t, output, "project_1235778731_data_6h.csv")
}

func TestHistoryCommand_Empty(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, ExportCmd(), []string{"history"})
	require.NoError(t, err)
	assert.Contains(t, output, "No exports recorded")
}
