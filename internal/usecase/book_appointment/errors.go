package book_appointment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is returned when the request fields are invalid.
	// The concrete error is a *ValidationError listing every violation.
	ErrValidation = errors.New("book_appointment: invalid input data")

	// ErrDateClosed is returned when the business is closed on the date.
	ErrDateClosed = errors.New("book_appointment: date is closed")

	// ErrSlotBlocked is returned when the time falls inside a block range.
	ErrSlotBlocked = errors.New("book_appointment: time slot is blocked")

	// ErrSlotTaken is returned when a non-cancelled appointment already
	// occupies the (date, time) pair.
	ErrSlotTaken = errors.New("book_appointment: slot already taken")

	// ErrInternal is returned on storage or transaction failures.
	ErrInternal = errors.New("book_appointment: internal error")
)

// FieldViolation names one invalid request field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError carries every violated field of a request, not just
// the first one found. Matches ErrValidation under errors.Is.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Fields returns the violated field names in declaration order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}
