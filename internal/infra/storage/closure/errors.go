package closure

import "errors"

var (
	// ErrClosureNotFound is returned when no closure rule matches.
	ErrClosureNotFound = errors.New("closure.repository: closure rule not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("closure.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("closure.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("closure.repository: failed to scan row")
)
