package models

import "errors"

// Domain errors shared across packages
var (
	// ErrProjectDisabled indicates detail data was requested for a disabled project
	ErrProjectDisabled = errors.New("project is disabled")
)
