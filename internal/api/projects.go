package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thenoetrevino/ugcctl/internal/models"
)

// ListQuery holds the optional server-side sort of the project list
type ListQuery struct {
	SortBy      string
	Order       string
	EnabledOnly *bool
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.SortBy != "" {
		v.Set("sort_by", q.SortBy)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.EnabledOnly != nil {
		v.Set("enabled_only", strconv.FormatBool(*q.EnabledOnly))
	}
	return v
}

// ValuesQuery holds the optional filters of the values endpoint.
// Empty fields are not sent.
type ValuesQuery struct {
	StartDate string
	EndDate   string
	MinValue  *float64
	MaxValue  *float64
	SortBy    string
	Order     string
}

func (q ValuesQuery) values() url.Values {
	v := url.Values{}
	if q.StartDate != "" {
		v.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("end_date", q.EndDate)
	}
	if q.MinValue != nil {
		v.Set("min_value", strconv.FormatFloat(*q.MinValue, 'f', -1, 64))
	}
	if q.MaxValue != nil {
		v.Set("max_value", strconv.FormatFloat(*q.MaxValue, 'f', -1, 64))
	}
	if q.SortBy != "" {
		v.Set("sort_by", q.SortBy)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	return v
}

func projectPath(id int, suffix string) string {
	return "/projects/" + strconv.Itoa(id) + suffix
}

// ListProjects fetches the project catalog
func (c *Client) ListProjects(ctx context.Context, q ListQuery) ([]*models.Project, error) {
	var projects []*models.Project
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("/projects", q.values()), &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []*models.Project{}
	}
	return projects, nil
}

// ListAllProjects fetches the catalog from the legacy endpoint and
// converts every entry to the canonical Project shape.
func (c *Client) ListAllProjects(ctx context.Context) ([]*models.Project, error) {
	q := url.Values{"token": []string{c.legacyToken}}

	var legacy []models.LegacyProject
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("/projects/all", q), &legacy); err != nil {
		return nil, err
	}

	projects := make([]*models.Project, 0, len(legacy))
	for _, p := range legacy {
		projects = append(projects, p.Canonical())
	}
	return projects, nil
}

// GetProject fetches one project. Extra fields such as indicators are ignored.
func (c *Client) GetProject(ctx context.Context, id int) (*models.Project, error) {
	var project models.Project
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(projectPath(id, ""), nil), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ToggleProject flips the enabled flag of a project
func (c *Client) ToggleProject(ctx context.Context, id int) (*models.ToggleResult, error) {
	var result models.ToggleResult
	if err := c.doJSON(ctx, http.MethodPut, c.endpoint(projectPath(id, "/toggle"), nil), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProjectIndicators fetches the indicators of a project with their categories
func (c *Client) GetProjectIndicators(ctx context.Context, id int) ([]models.ProjectIndicatorDetail, error) {
	var details []models.ProjectIndicatorDetail
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(projectPath(id, "/indicators"), nil), &details); err != nil {
		return nil, err
	}
	if details == nil {
		details = []models.ProjectIndicatorDetail{}
	}
	return details, nil
}

// GetProjectValues fetches the time-series values of a project
func (c *Client) GetProjectValues(ctx context.Context, id int, q ValuesQuery) (*models.ProjectValues, error) {
	var values models.ProjectValues
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(projectPath(id, "/values"), q.values()), &values); err != nil {
		return nil, err
	}
	if values.Values == nil {
		values.Values = []models.NumericValue{}
	}
	return &values, nil
}

// Health is the answer of the server health probe
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health calls /health at the server root
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.doJSON(ctx, http.MethodGet, c.rootEndpoint("/health"), &h); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}
	return &h, nil
}
