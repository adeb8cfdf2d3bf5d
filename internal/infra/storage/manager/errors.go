package manager

import "errors"

var (
	// ErrManagerNotFound is returned when no manager account matches.
	ErrManagerNotFound = errors.New("manager.repository: manager not found")

	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("manager.repository: duplicate username")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("manager.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("manager.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("manager.repository: failed to scan row")
)
