package export

import "errors"

// Domain errors for export service
var (
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrInvalidFormat    = errors.New("invalid export format")
	ErrNoDirectory      = errors.New("export directory is not set")
)
