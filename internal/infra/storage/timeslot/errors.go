package timeslot

import "errors"

var (
	// ErrSlotNotFound is returned when no catalog slot matches.
	ErrSlotNotFound = errors.New("timeslot.repository: time slot not found")

	// ErrDuplicateSlot is returned when a slot with the same slot_time
	// already exists, active or not.
	ErrDuplicateSlot = errors.New("timeslot.repository: duplicate slot time")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)
