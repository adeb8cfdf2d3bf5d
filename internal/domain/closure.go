package domain

import (
	"fmt"
	"time"

	"github.com/agendalivre/booking-service/pkg/types"
)

// ClosureType distinguishes recurring weekly closures from one-off dates.
type ClosureType string

const (
	ClosureWeekly       ClosureType = "weekly"
	ClosureSpecificDate ClosureType = "specific_date"
)

// Weekday is the day-of-week enum used by weekly closure rules.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekdayFromTime maps time.Weekday (0=Sunday..6=Saturday) to the enum.
func WeekdayFromTime(wd time.Weekday) Weekday {
	switch wd {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ValidWeekday reports whether w is a known weekday value.
func ValidWeekday(w Weekday) bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// ClosureRule shuts an entire date to booking: either every occurrence of
// one weekday (weekly) or a single date (specific_date).
//
// Invariant: exactly one of DayOfWeek/SpecificDate is set, matching
// ClosureType.
type ClosureRule struct {
	ID           string
	ClosureType  ClosureType
	DayOfWeek    *Weekday
	SpecificDate *types.DateString
	Reason       *string
	IsActive     bool
}

// Validate enforces the exactly-one-of invariant.
func (r *ClosureRule) Validate() error {
	switch r.ClosureType {
	case ClosureWeekly:
		if r.DayOfWeek == nil || r.SpecificDate != nil {
			return fmt.Errorf("weekly closure must set dayOfWeek and no specificDate")
		}
		if !ValidWeekday(*r.DayOfWeek) {
			return fmt.Errorf("unknown dayOfWeek %q", *r.DayOfWeek)
		}
	case ClosureSpecificDate:
		if r.SpecificDate == nil || r.DayOfWeek != nil {
			return fmt.Errorf("specific_date closure must set specificDate and no dayOfWeek")
		}
		if err := r.SpecificDate.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown closureType %q", r.ClosureType)
	}
	return nil
}

// Matches reports whether the rule closes the given date. Inactive rules
// never match.
func (r *ClosureRule) Matches(date types.DateString) (bool, error) {
	if !r.IsActive {
		return false, nil
	}

	switch r.ClosureType {
	case ClosureWeekly:
		if r.DayOfWeek == nil {
			return false, nil
		}
		wd, err := date.Weekday()
		if err != nil {
			return false, err
		}
		return WeekdayFromTime(wd) == *r.DayOfWeek, nil
	case ClosureSpecificDate:
		return r.SpecificDate != nil && *r.SpecificDate == date, nil
	}
	return false, nil
}
