package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("appointments: internal error")
)
