package domain

import "github.com/agendalivre/booking-service/pkg/types"

// TimeSlot is one canonical time-of-day offering from the catalog,
// independent of any specific date. slot_time is unique across active and
// inactive slots alike.
type TimeSlot struct {
	ID       string
	SlotTime types.TimeString
	IsActive bool
}

// TimeSlotPatch is a partial update for a catalog slot: rename, toggle,
// or both. Nil means "leave as is".
type TimeSlotPatch struct {
	SlotTime *types.TimeString
	IsActive *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *TimeSlotPatch) IsEmpty() bool {
	return p.SlotTime == nil && p.IsActive == nil
}
