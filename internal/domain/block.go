package domain

import (
	"fmt"

	"github.com/agendalivre/booking-service/pkg/types"
)

// SlotBlock is an ad-hoc time-range exclusion on one date, narrower than a
// full-day closure. The range is half-open: [StartTime, EndTime).
type SlotBlock struct {
	ID           string
	SpecificDate types.DateString
	StartTime    types.TimeString
	EndTime      types.TimeString
	Reason       *string
	IsActive     bool
}

// Validate checks the field formats and that EndTime is strictly later
// than StartTime (same-day range, no overnight wrap).
func (b *SlotBlock) Validate() error {
	if err := b.SpecificDate.Validate(); err != nil {
		return err
	}
	if err := b.StartTime.Validate(); err != nil {
		return err
	}
	if err := b.EndTime.Validate(); err != nil {
		return err
	}

	start, err := b.StartTime.Minutes()
	if err != nil {
		return err
	}
	end, err := b.EndTime.Minutes()
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("endTime %s must be later than startTime %s", b.EndTime, b.StartTime)
	}
	return nil
}

// Covers reports whether t falls inside the blocked range. The interval is
// half-open: a block [10:00, 10:30) excludes the 10:00 slot but not a slot
// exactly at 10:30. Inactive blocks cover nothing.
func (b *SlotBlock) Covers(t types.TimeString) (bool, error) {
	if !b.IsActive {
		return false, nil
	}

	start, err := b.StartTime.Minutes()
	if err != nil {
		return false, err
	}
	end, err := b.EndTime.Minutes()
	if err != nil {
		return false, err
	}
	tm, err := t.Minutes()
	if err != nil {
		return false, err
	}
	return start <= tm && tm < end, nil
}
