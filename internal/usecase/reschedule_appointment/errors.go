package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput is returned when a patch field is invalid.
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrEmptyPatch is returned when the request changes nothing.
	ErrEmptyPatch = errors.New("reschedule_appointment: no fields to update")

	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrSlotTaken is returned when the target (date, time) is occupied
	// by another non-cancelled appointment.
	ErrSlotTaken = errors.New("reschedule_appointment: slot already taken")

	// ErrInternal is returned on storage or transaction failures.
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
