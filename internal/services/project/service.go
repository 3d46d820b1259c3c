package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/ugcctl/internal/api"
	"github.com/thenoetrevino/ugcctl/internal/catalog"
	"github.com/thenoetrevino/ugcctl/internal/models"
	"golang.org/x/sync/errgroup"
)

// Catalog sources
const (
	SourceAPI    = "api"
	SourceLegacy = "legacy"
)

// Service defines all project-related operations against the backend
type Service interface {
	// Read operations
	List(ctx context.Context, req ListRequest) ([]*models.Project, error)
	Get(ctx context.Context, id int) (*models.Project, error)
	Indicators(ctx context.Context, id int) ([]models.ProjectIndicatorDetail, error)
	Details(ctx context.Context, id int, q api.ValuesQuery) (*Details, error)

	// Write operations
	Toggle(ctx context.Context, id int, list ListRequest) (*ToggleOutcome, error)
}

// ListRequest selects the server-side order of the catalog.
// Empty fields let the backend apply its defaults.
type ListRequest struct {
	SortBy      string
	Order       string
	EnabledOnly *bool
}

// Details joins a project with its time-series values
type Details struct {
	Project *models.Project
	Values  *models.ProjectValues
}

// ToggleOutcome carries the backend answer and the reloaded catalog
type ToggleOutcome struct {
	Result   *models.ToggleResult
	Projects []*models.Project
}

// client defines the backend calls needed by the project service
// This interface is private to the service layer
type client interface {
	ListProjects(ctx context.Context, q api.ListQuery) ([]*models.Project, error)
	ListAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id int) (*models.Project, error)
	ToggleProject(ctx context.Context, id int) (*models.ToggleResult, error)
	GetProjectIndicators(ctx context.Context, id int) ([]models.ProjectIndicatorDetail, error)
	GetProjectValues(ctx context.Context, id int, q api.ValuesQuery) (*models.ProjectValues, error)
}

// service implements Service interface with a private client
type service struct {
	client client
	source string
}

// NewService creates a project service. source selects the catalog endpoint
// (SourceAPI or SourceLegacy); anything else falls back to SourceAPI.
func NewService(c client, source string) Service {
	if source != SourceLegacy {
		source = SourceAPI
	}
	return &service{client: c, source: source}
}

// List fetches the catalog
func (s *service) List(ctx context.Context, req ListRequest) ([]*models.Project, error) {
	req, err := normalizeListRequest(req)
	if err != nil {
		return nil, err
	}

	var projects []*models.Project
	if s.source == SourceLegacy {
		projects, err = s.client.ListAllProjects(ctx)
	} else {
		projects, err = s.client.ListProjects(ctx, api.ListQuery{
			SortBy:      req.SortBy,
			Order:       req.Order,
			EnabledOnly: req.EnabledOnly,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get retrieves a specific project
func (s *service) Get(ctx context.Context, id int) (*models.Project, error) {
	if id == 0 {
		return nil, ErrInvalidProjectID
	}

	p, err := s.client.GetProject(ctx, id)
	if err != nil {
		return nil, wrapLookup(id, err)
	}
	return p, nil
}

// Indicators retrieves the indicators and categories of a project
func (s *service) Indicators(ctx context.Context, id int) ([]models.ProjectIndicatorDetail, error) {
	if id == 0 {
		return nil, ErrInvalidProjectID
	}

	details, err := s.client.GetProjectIndicators(ctx, id)
	if err != nil {
		return nil, wrapLookup(id, err)
	}
	return details, nil
}

// Details fetches the project and its values concurrently.
// Either failure cancels the other request and is returned alone.
func (s *service) Details(ctx context.Context, id int, q api.ValuesQuery) (*Details, error) {
	if id == 0 {
		return nil, ErrInvalidProjectID
	}

	var out Details
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.client.GetProject(gctx, id)
		if err != nil {
			return err
		}
		if !p.Enabled {
			return models.ErrProjectDisabled
		}
		out.Project = p
		return nil
	})

	g.Go(func() error {
		v, err := s.client.GetProjectValues(gctx, id, q)
		if err != nil {
			return err
		}
		out.Values = v
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, models.ErrProjectDisabled) || api.IsForbidden(err) {
			return nil, fmt.Errorf("project %d: %w", id, models.ErrProjectDisabled)
		}
		slog.Error("failed to load project details", "project_id", id, "error", err)
		return nil, wrapLookup(id, err)
	}

	return &out, nil
}

// Toggle flips the enabled flag, then reloads the whole catalog.
// The local list is never patched in place. When only the reload fails the
// outcome still carries the toggle result and the error wraps ErrReloadFailed.
func (s *service) Toggle(ctx context.Context, id int, list ListRequest) (*ToggleOutcome, error) {
	if id == 0 {
		return nil, ErrInvalidProjectID
	}

	result, err := s.client.ToggleProject(ctx, id)
	if err != nil {
		return nil, wrapLookup(id, err)
	}
	slog.Info("project toggled", "project_id", id, "enabled", result.Enabled)

	projects, err := s.List(ctx, list)
	if err != nil {
		return &ToggleOutcome{Result: result}, fmt.Errorf("toggled project %d: %w: %w", id, ErrReloadFailed, err)
	}

	return &ToggleOutcome{Result: result, Projects: projects}, nil
}

func wrapLookup(id int, err error) error {
	if api.IsNotFound(err) {
		return fmt.Errorf("project %d: %w: %w", id, ErrProjectNotFound, err)
	}
	return fmt.Errorf("project %d: %w", id, err)
}

// normalizeListRequest validates the sort fields and rewrites aliases
// (created_at, updated) to the names the backend understands.
func normalizeListRequest(req ListRequest) (ListRequest, error) {
	if req.SortBy != "" {
		key, err := catalog.ParseSortKey(req.SortBy)
		if err != nil {
			return req, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		req.SortBy = key.String()
	}
	if req.Order != "" {
		dir, err := catalog.ParseDirection(req.Order)
		if err != nil {
			return req, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		req.Order = dir.String()
	}
	return req, nil
}
