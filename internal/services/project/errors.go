package project

import "errors"

// Domain errors for project service
var (
	// Validation errors
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrInvalidRequest   = errors.New("invalid request")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")

	// ErrReloadFailed means the toggle went through but the catalog could not be reloaded
	ErrReloadFailed = errors.New("failed to reload projects")
)
