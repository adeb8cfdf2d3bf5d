package get_available_slots

import "errors"

var (
	// ErrInvalidDate is returned when the requested date is malformed.
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
