package status

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ugcctl/internal/cli"
	"github.com/thenoetrevino/ugcctl/internal/testutil"
	cliutil "github.com/thenoetrevino/ugcctl/internal/testutil/cli"
)

func TestStatusCommand_Healthy(t *testing.T) {
	backend, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, StatusCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "healthy", result["status"])
	assert.Equal(t, "technical-server", result["service"])
	assert.Equal(t, backend.BaseURL(), result["base_url"])
	assert.Equal(t, 1, backend.Calls(testutil.RouteHealth))
}

func TestStatusCommand_ServerError(t *testing.T) {
	backend, testApp := cliutil.SetupCLITest(t)
	backend.Fail(testutil.RouteHealth, http.StatusServiceUnavailable)

	output, err := cliutil.ExecuteCLICommand(t, testApp, StatusCmd(), []string{"--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCodeOf(err))

	errData := testutil.ParseJSON(t, output)["error"].(map[string]interface{})
	assert.Equal(t, "API_ERROR", errData["code"])
	assert.Equal(t, "Check the UGC API logs", errData["suggestion"])
}
