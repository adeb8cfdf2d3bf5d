package get_available_slots

import "github.com/agendalivre/booking-service/pkg/types"

// Request names the date to resolve.
type Request struct {
	Date types.DateString
}

// Slot is one bookable catalog entry.
type Slot struct {
	ID       string
	SlotTime types.TimeString
}

// Response is the resolved availability: bookable slots in ascending
// slot-time order. Empty (never nil) when the date is closed or fully
// booked.
type Response struct {
	Date  types.DateString
	Slots []Slot
}
