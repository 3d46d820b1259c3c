package cli

import (
	"testing"

	"github.com/thenoetrevino/ugcctl/internal/app"
	"github.com/thenoetrevino/ugcctl/internal/config"
	"github.com/thenoetrevino/ugcctl/internal/testutil"
)

// SetupCLITest starts a fake backend and an App pointed at it, with an
// in-memory history database and a temporary export directory.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*testutil.FakeBackend, *app.App) {
	t.Helper()

	backend := testutil.NewFakeBackend(t)
	db := testutil.SetupTestDB(t)

	cfg := config.Default()
	cfg.API.BaseURL = backend.BaseURL()
	cfg.Export.Dir = t.TempDir()

	appInstance, err := app.New(cfg, db)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	return backend, appInstance
}
