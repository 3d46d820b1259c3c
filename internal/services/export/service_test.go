package export

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ugcctl/internal/api"
	"github.com/thenoetrevino/ugcctl/internal/database"
	"github.com/thenoetrevino/ugcctl/internal/export"
	"github.com/thenoetrevino/ugcctl/internal/testutil"
)

const paris = -98349789

func setupService(t *testing.T) (Service, *testutil.FakeBackend, string) {
	t.Helper()
	fb := testutil.NewFakeBackend(t)
	c, err := api.New(api.Options{BaseURL: fb.BaseURL(), Timeout: 2 * time.Second})
	require.NoError(t, err)

	db := testutil.SetupTestDB(t)
	dir := t.TempDir()
	return NewService(c, database.NewExportRepo(db), dir), fb, dir
}

func TestExport_WritesFileAndRecords(t *testing.T) {
	t.Setenv("UGCCTL_USER", "regie-paris")
	svc, fb, dir := setupService(t)
	ctx := context.Background()

	rec, err := svc.Export(ctx, Request{ProjectID: paris, Format: export.CSV, Hours: 6})
	require.NoError(t, err)

	assert.Equal(t, "project_-98349789_data_6h.csv", rec.FileName)
	assert.Equal(t, filepath.Join(dir, rec.FileName), rec.Path)
	assert.Positive(t, rec.ID)

	data, err := os.ReadFile(rec.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), rec.Bytes)
	assert.True(t, strings.HasPrefix(string(data), "temps_debut"))
	assert.Equal(t, 1, fb.Calls(testutil.RouteExport))

	history, err := svc.History(ctx, database.ExportFilter{ProjectID: paris})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, rec.Path, history[0].Path)
	assert.Equal(t, "regie-paris", history[0].ExportedBy)
}

func TestExport_OverridesDirectory(t *testing.T) {
	svc, _, _ := setupService(t)
	other := filepath.Join(t.TempDir(), "sub")

	rec, err := svc.Export(context.Background(), Request{ProjectID: paris, Format: export.JSON, Hours: 1, Dir: other})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(other, "project_-98349789_data_1h.json"), rec.Path)
}

func TestExport_BackendErrorLeavesNoFile(t *testing.T) {
	svc, fb, dir := setupService(t)
	fb.Fail(testutil.RouteExport, http.StatusInternalServerError)

	_, err := svc.Export(context.Background(), Request{ProjectID: paris, Format: export.CSV, Hours: 3})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, api.StatusCode(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	history, err := svc.History(context.Background(), database.ExportFilter{})
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestExport_HoursPassThroughToBackend(t *testing.T) {
	svc, fb, _ := setupService(t)

	_, err := svc.Export(context.Background(), Request{ProjectID: paris, Format: export.CSV, Hours: 2})
	require.Error(t, err)
	assert.True(t, api.IsBadRequest(err))
	assert.Equal(t, 1, fb.Calls(testutil.RouteExport))
}

func TestExport_Validation(t *testing.T) {
	svc, fb, _ := setupService(t)

	_, err := svc.Export(context.Background(), Request{Format: export.CSV, Hours: 1})
	assert.ErrorIs(t, err, ErrInvalidProjectID)

	_, err = svc.Export(context.Background(), Request{ProjectID: paris, Format: "xml", Hours: 1})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	assert.Zero(t, fb.Calls(testutil.RouteExport))
}

func TestExport_NoDirectory(t *testing.T) {
	svc := NewService(nil, nil, "")

	_, err := svc.Export(context.Background(), Request{ProjectID: paris, Format: export.CSV, Hours: 1})
	assert.ErrorIs(t, err, ErrNoDirectory)
}

// failingReader breaks mid-stream
type failingReader struct{ sent bool }

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.sent {
		r.sent = true
		return copy(p, "partial"), nil
	}
	return 0, errors.New("connection reset")
}

type streamClient struct{ r io.Reader }

func (c streamClient) Export(context.Context, int, export.Format, int) (io.ReadCloser, error) {
	return io.NopCloser(c.r), nil
}

func TestExport_InterruptedDownloadRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(streamClient{r: &failingReader{}}, nil, dir)

	_, err := svc.Export(context.Background(), Request{ProjectID: 1, Format: export.CSV, Hours: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "neither the final file nor the temp file may remain")
}

func TestExport_WithoutStore(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(streamClient{r: strings.NewReader("a,b\n")}, nil, dir)

	rec, err := svc.Export(context.Background(), Request{ProjectID: 1, Format: export.CSV, Hours: 12})
	require.NoError(t, err)
	assert.Zero(t, rec.ID)
	assert.Equal(t, int64(4), rec.Bytes)

	history, err := svc.History(context.Background(), database.ExportFilter{})
	require.NoError(t, err)
	assert.Empty(t, history)
}
