package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/ugcctl/internal/database"
	"github.com/thenoetrevino/ugcctl/internal/export"
	"github.com/thenoetrevino/ugcctl/internal/models"
	"github.com/thenoetrevino/ugcctl/internal/user"
)

// Service downloads export files and keeps their history
type Service interface {
	Export(ctx context.Context, req Request) (*models.ExportRecord, error)
	History(ctx context.Context, filter database.ExportFilter) ([]*models.ExportRecord, error)
}

// Request describes one export. An empty Dir uses the service default.
type Request struct {
	ProjectID int
	Format    export.Format
	Hours     int
	Dir       string
}

// client defines the backend call needed by the export service
type client interface {
	Export(ctx context.Context, projectID int, format export.Format, hours int) (io.ReadCloser, error)
}

// store defines the history operations needed by the export service
type store interface {
	RecordExport(ctx context.Context, rec *models.ExportRecord) (*models.ExportRecord, error)
	ListExports(ctx context.Context, filter database.ExportFilter) ([]*models.ExportRecord, error)
}

type service struct {
	client     client
	store      store
	defaultDir string
}

// NewService creates an export service. store may be nil, in which case
// exports are written but not recorded.
func NewService(c client, s store, defaultDir string) Service {
	return &service{client: c, store: s, defaultDir: defaultDir}
}

// Export streams the backend file to <dir>/<FileName> and records it.
// The file only appears under its final name once fully written.
// Hours are not checked here; the backend rejects unsupported windows.
func (s *service) Export(ctx context.Context, req Request) (*models.ExportRecord, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	dir := req.Dir
	if dir == "" {
		dir = s.defaultDir
	}
	if dir == "" {
		return nil, ErrNoDirectory
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	name := export.FileName(req.ProjectID, req.Format, req.Hours)
	target, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve export path: %w", err)
	}

	body, err := s.client.Export(ctx, req.ProjectID, req.Format, req.Hours)
	if err != nil {
		return nil, fmt.Errorf("failed to export project %d as %s: %w", req.ProjectID, req.Format, err)
	}
	defer func() {
		if err := body.Close(); err != nil {
			slog.Debug("failed to close export body", "error", err)
		}
	}()

	written, err := writeAtomically(target, body)
	if err != nil {
		return nil, err
	}

	rec := &models.ExportRecord{
		ProjectID:      req.ProjectID,
		Format:         string(req.Format),
		AggregateHours: req.Hours,
		FileName:       name,
		Path:           target,
		Bytes:          written,
		ExportedBy:     user.Operator(),
	}
	slog.Info("export saved", "project_id", req.ProjectID, "path", target, "bytes", written)

	if s.store == nil {
		return rec, nil
	}

	saved, err := s.store.RecordExport(ctx, rec)
	if err != nil {
		// The file is on disk; losing the history entry is not fatal
		slog.Warn("failed to record export", "path", target, "error", err)
		return rec, nil
	}
	return saved, nil
}

// History lists recorded exports, newest first
func (s *service) History(ctx context.Context, filter database.ExportFilter) ([]*models.ExportRecord, error) {
	if s.store == nil {
		return []*models.ExportRecord{}, nil
	}
	records, err := s.store.ListExports(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load export history: %w", err)
	}
	return records, nil
}

func (s *service) validate(req Request) error {
	if req.ProjectID == 0 {
		return ErrInvalidProjectID
	}
	if _, err := export.ParseFormat(string(req.Format)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return nil
}

// writeAtomically copies r into a temp file next to target, then renames it
func writeAtomically(target string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		if err := os.Remove(tmpName); err != nil && !os.IsNotExist(err) {
			slog.Debug("failed to remove temp file", "path", tmpName, "error", err)
		}
	}

	written, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		cleanup()
		return 0, fmt.Errorf("failed to download export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return 0, fmt.Errorf("failed to write export: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return 0, fmt.Errorf("failed to save export: %w", err)
	}
	return written, nil
}
