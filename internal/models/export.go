package models

import "time"

// ExportRecord is a locally recorded export file
type ExportRecord struct {
	ID             int       `json:"id"`
	ProjectID      int       `json:"project_id"`
	Format         string    `json:"format"`
	AggregateHours int       `json:"aggregate_hours"`
	FileName       string    `json:"file_name"`
	Path           string    `json:"path"`
	Bytes          int64     `json:"bytes"`
	ExportedBy     string    `json:"exported_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// GetID returns the record ID (used by quiet CLI output)
func (r *ExportRecord) GetID() int {
	return r.ID
}
