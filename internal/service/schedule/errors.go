package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is returned when input fails a schedule invariant
	// (format, exactly-one-of closure fields, block range). Closure and
	// block creation return a *ValidationError listing every violation.
	ErrValidation = errors.New("schedule: validation failed")

	// ErrDuplicateSlot is returned when a catalog slot with that time
	// already exists, active or not.
	ErrDuplicateSlot = errors.New("schedule: duplicate slot time")

	// ErrSlotNotFound is returned when the catalog slot does not exist.
	ErrSlotNotFound = errors.New("schedule: time slot not found")

	// ErrClosureNotFound is returned when the closure rule does not exist.
	ErrClosureNotFound = errors.New("schedule: closure rule not found")

	// ErrBlockNotFound is returned when the slot block does not exist.
	ErrBlockNotFound = errors.New("schedule: slot block not found")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("schedule: internal error")
)

// FieldViolation names one invalid input field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError carries every violated field of an input, not just
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
