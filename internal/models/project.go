package models

// Project represents a cinema site tracked by the UGC analytics backend.
// Projects are the top-level unit; Enabled gates access to their detail data.
type Project struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	CreatedAt Timestamp `json:"create_on"`
	UpdatedAt Timestamp `json:"update_on"`
}

// GetID returns the project ID (used by quiet CLI output)
func (p *Project) GetID() int {
	return p.ID
}

// LegacyProject is the project shape served by the /projects/all endpoint.
// It is converted to Project right after decoding.
type LegacyProject struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
	IsActive  bool      `json:"is_active"`
}

// Canonical converts the legacy shape to a Project
func (p LegacyProject) Canonical() *Project {
	return &Project{
		ID:        p.ID,
		Name:      p.Name,
		Enabled:   p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToggleResult is the backend answer to a toggle request
type ToggleResult struct {
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}
