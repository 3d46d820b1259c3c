package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/ugcctl/internal/models"
)

// ExportReader defines read operations for the export history.
type ExportReader interface {
	ListExports(ctx context.Context, filter ExportFilter) ([]*models.ExportRecord, error)
	GetExport(ctx context.Context, id int) (*models.ExportRecord, error)
}

// ExportWriter defines write operations for the export history.
type ExportWriter interface {
	RecordExport(ctx context.Context, rec *models.ExportRecord) (*models.ExportRecord, error)
}

// ExportRepository combines all export history operations.
type ExportRepository interface {
	ExportReader
	ExportWriter
}

// ExportFilter narrows ListExports. Zero values mean "no restriction".
type ExportFilter struct {
	ProjectID int
	Limit     int
}

// ErrExportNotFound is returned by GetExport for an unknown id
var ErrExportNotFound = errors.New("export not found")

// ExportRepo stores export records in SQLite
type ExportRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewExportRepo creates an ExportRepo over an initialized database
func NewExportRepo(db *sql.DB) *ExportRepo {
	return &ExportRepo{db: db, now: time.Now}
}

// RecordExport inserts a record and returns it with its ID and timestamp set
func (r *ExportRepo) RecordExport(ctx context.Context, rec *models.ExportRecord) (*models.ExportRecord, error) {
	created := rec.CreatedAt
	if created.IsZero() {
		created = r.now()
	}
	created = created.UTC()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO exports (project_id, format, aggregate_hours, file_name, path, bytes, exported_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ProjectID, rec.Format, rec.AggregateHours, rec.FileName, rec.Path, rec.Bytes, rec.ExportedBy, created,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record export of project %d: %w", rec.ProjectID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get export ID after insert: %w", err)
	}

	out := *rec
	out.ID = int(id)
	out.CreatedAt = created
	return &out, nil
}

// ListExports returns the most recent exports first
func (r *ExportRepo) ListExports(ctx context.Context, filter ExportFilter) ([]*models.ExportRecord, error) {
	query := `SELECT id, project_id, format, aggregate_hours, file_name, path, bytes, exported_by, created_at FROM exports`
	var args []any
	if filter.ProjectID != 0 {
		query += ` WHERE project_id = ?`
		args = append(args, filter.ProjectID)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []*models.ExportRecord{}
	for rows.Next() {
		rec, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exports: %w", err)
	}
	return records, nil
}

// GetExport returns one record by id
func (r *ExportRepo) GetExport(ctx context.Context, id int) (*models.ExportRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, format, aggregate_hours, file_name, path, bytes, exported_by, created_at
		 FROM exports WHERE id = ?`, id)

	rec, err := scanExport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("export %d: %w", id, ErrExportNotFound)
	}
	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExport(s scanner) (*models.ExportRecord, error) {
	var rec models.ExportRecord
	if err := s.Scan(&rec.ID, &rec.ProjectID, &rec.Format, &rec.AggregateHours,
		&rec.FileName, &rec.Path, &rec.Bytes, &rec.ExportedBy, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan export: %w", err)
	}
	return &rec, nil
}
