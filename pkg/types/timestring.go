package types

import (
	"fmt"
	"regexp"
	"time"
)

// timePattern matches the canonical zero-padded 24h "HH:MM" representation.
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// TimeString is a time of day in canonical "HH:MM" form.
//
// The representation contract: the string is always zero-padded 24h, so
// lexicographic comparison of two valid TimeStrings is chronological
// comparison. Components rely on this for ordering and range checks
// without converting to time.Time.
type TimeString string

// NewTimeString builds a TimeString from the wall-clock component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates a "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the canonical "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty (unset).
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the canonical "HH:MM" format.
func (t TimeString) Validate() error {
	if !timePattern.MatchString(string(t)) {
		return fmt.Errorf("invalid time string format: %q (want HH:MM)", string(t))
	}
	return nil
}

// Minutes converts the time of day to minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time string format: %q: %v", string(t), err)
	}
	return h*60 + m, nil
}

// AddMinutes returns the time of day shifted forward by minutes.
// The result must stay within the same day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s%+d minutes is outside the day", t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Valid for canonical values only (see the representation contract).
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
