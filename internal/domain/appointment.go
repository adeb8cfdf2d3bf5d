package domain

import (
	"time"

	"github.com/agendalivre/booking-service/pkg/types"
)

// AppointmentStatus represents the persisted lifecycle status of an
// appointment. "overdue" is deliberately absent: it is a read-time
// projection (see DisplayStatus), never stored.
type AppointmentStatus string

const (
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusCancelled   AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is a known persisted status.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusConfirmed, StatusRescheduled, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a client booking for one (date, time) slot.
//
// Invariant: at most one non-cancelled appointment may occupy a given
// (date, time) pair. Cancelled appointments are retained for audit and do
// not occupy their slot.
type Appointment struct {
	ID          string
	ClientName  string
	ClientPhone string
	Date        types.DateString
	Time        types.TimeString
	Status      AppointmentStatus
	CreatedAt   time.Time
}

// Occupies reports whether the appointment holds its (date, time) slot.
func (a *Appointment) Occupies() bool {
	return a.Status != StatusCancelled
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// DisplayStatus values shown to clients. Superset of the persisted
// statuses: "overdue" exists only here.
const (
	DisplayConfirmed   = "confirmed"
	DisplayRescheduled = "rescheduled"
	DisplayCancelled   = "cancelled"
	DisplayOverdue     = "overdue"
)

// DisplayStatus projects the presentation status at read time. A
// non-cancelled appointment strictly in the past relative to now is
// reported as overdue even though nothing ever marks it so in the store.
func (a *Appointment) DisplayStatus(now time.Time) string {
	if a.Status == StatusCancelled {
		return DisplayCancelled
	}

	today := types.NewDateString(now)
	current := types.NewTimeString(now)
	if a.Date.IsBefore(today) || (a.Date == today && a.Time.IsBefore(current)) {
		return DisplayOverdue
	}

	if a.Status == StatusRescheduled {
		return DisplayRescheduled
	}
	return DisplayConfirmed
}

// AppointmentPatch is a partial update. A nil field means "leave as is";
// a set field replaces the stored value. Status here accepts only
// confirmed/rescheduled — cancellation has its own operation.
type AppointmentPatch struct {
	ClientName  *string
	ClientPhone *string
	Date        *types.DateString
	Time        *types.TimeString
	Status      *AppointmentStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p *AppointmentPatch) IsEmpty() bool {
	return p.ClientName == nil && p.ClientPhone == nil &&
		p.Date == nil && p.Time == nil && p.Status == nil
}

// ChangesSlot reports whether the patch moves the appointment to another
// (date, time) pair, which re-triggers the occupancy check.
func (p *AppointmentPatch) ChangesSlot() bool {
	return p.Date != nil || p.Time != nil
}
