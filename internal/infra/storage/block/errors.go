package block

import "errors"

var (
	// ErrBlockNotFound is returned when no slot block matches.
	ErrBlockNotFound = errors.New("block.repository: slot block not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("block.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("block.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("block.repository: failed to scan row")
)
