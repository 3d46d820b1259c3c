package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ugcctl/internal/models"
)

// setupExportRepo creates an in-memory database and a repo with a fixed clock
func setupExportRepo(t *testing.T) (*sql.DB, *ExportRepo) {
	t.Helper()
	db, err := OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewExportRepo(db)
	base := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return db, repo
}

func record(projectID int, format string, hours int) *models.ExportRecord {
	return &models.ExportRecord{
		ProjectID:      projectID,
		Format:         format,
		AggregateHours: hours,
		FileName:       "f",
		Path:           "/tmp/f",
		Bytes:          128,
	}
}

func TestRecordExport(t *testing.T) {
	_, repo := setupExportRepo(t)
	ctx := context.Background()

	rec, err := repo.RecordExport(ctx, &models.ExportRecord{
		ProjectID:      -1867723345,
		Format:         "csv",
		AggregateHours: 6,
		FileName:       "project_-1867723345_data_6h.csv",
		Path:           "/tmp/project_-1867723345_data_6h.csv",
		Bytes:          2048,
		ExportedBy:     "regie-nice",
	})
	require.NoError(t, err)
	assert.Positive(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := repo.GetExport(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ProjectID, got.ProjectID)
	assert.Equal(t, "csv", got.Format)
	assert.Equal(t, 6, got.AggregateHours)
	assert.Equal(t, int64(2048), got.Bytes)
	assert.Equal(t, "regie-nice", got.ExportedBy)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt), "timestamps differ: %v vs %v", rec.CreatedAt, got.CreatedAt)
}

func TestListExports_NewestFirstAndFiltered(t *testing.T) {
	_, repo := setupExportRepo(t)
	ctx := context.Background()

	for _, r := range []*models.ExportRecord{
		record(1, "csv", 1),
		record(2, "json", 3),
		record(1, "json", 12),
	} {
		_, err := repo.RecordExport(ctx, r)
		require.NoError(t, err)
	}

	all, err := repo.ListExports(ctx, ExportFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 12, all[0].AggregateHours)
	assert.Equal(t, 1, all[2].AggregateHours)

	forOne, err := repo.ListExports(ctx, ExportFilter{ProjectID: 1})
	require.NoError(t, err)
	require.Len(t, forOne, 2)
	for _, r := range forOne {
		assert.Equal(t, 1, r.ProjectID)
	}

	limited, err := repo.ListExports(ctx, ExportFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "json", limited[0].Format)
}

func TestListExports_EmptyIsNonNil(t *testing.T) {
	_, repo := setupExportRepo(t)

	got, err := repo.ListExports(context.Background(), ExportFilter{ProjectID: 99})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetExport_NotFound(t *testing.T) {
	_, repo := setupExportRepo(t)

	_, err := repo.GetExport(context.Background(), 404)
	assert.True(t, errors.Is(err, ErrExportNotFound))
}

func TestInitDB_FileAndIdempotentMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "ugcctl.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	_, err = NewExportRepo(db).RecordExport(ctx, record(7, "csv", 1))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopen: migrations must not run twice nor drop data
	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var version int
	require.NoError(t, db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, len(migrations), version)

	records, err := NewExportRepo(db).ListExports(ctx, ExportFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
