package types

import (
	"fmt"
	"regexp"
	"time"
)

// datePattern matches the canonical "YYYY-MM-DD" representation.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateFormat is the time.Parse layout matching DateString.
const DateFormat = "2006-01-02"

// DateString is a calendar date in canonical "YYYY-MM-DD" form.
//
// Same representation contract as TimeString: the string is zero-padded and
// ISO-ordered, so lexicographic comparison is chronological comparison.
type DateString string

// NewDateString builds a DateString from the date component of t.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString parses and validates a "YYYY-MM-DD" string.
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// String returns the canonical "YYYY-MM-DD" form.
func (d DateString) String() string {
	return string(d)
}

// IsZero reports whether the value is empty (unset).
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks the canonical format and that the date actually exists
// on the calendar (rejects e.g. "2025-02-30").
func (d DateString) Validate() error {
	if !datePattern.MatchString(string(d)) {
		return fmt.Errorf("invalid date string format: %q (want YYYY-MM-DD)", string(d))
	}
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("invalid date string: %q: %v", string(d), err)
	}
	return nil
}

// Weekday returns the day of week for the date.
// The value must be valid; invalid dates report an error.
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return 0, fmt.Errorf("invalid date string: %q: %v", string(d), err)
	}
	return t.Weekday(), nil
}

// IsBefore reports whether d is strictly earlier than other.
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter reports whether d is strictly later than other.
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}
