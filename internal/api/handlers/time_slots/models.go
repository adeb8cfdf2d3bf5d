package time_slots

import (
	"github.com/agendalivre/booking-service/internal/domain"
)

// CreateTimeSlotRequest is the HTTP request model for a new catalog slot.
type CreateTimeSlotRequest struct {
	SlotTime string `json:"slotTime"` // "09:00"
}

// UpdateTimeSlotRequest renames and/or toggles a slot: omitted fields
// keep their stored value.
type UpdateTimeSlotRequest struct {
	SlotTime *string `json:"slotTime,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// TimeSlotResponse is the HTTP model of one catalog slot.
type TimeSlotResponse struct {
	ID       string `json:"id"`
	SlotTime string `json:"slotTime"`
	IsActive bool   `json:"isActive"`
}

// FromDomain converts one catalog slot to the HTTP model.
func FromDomain(slot *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:       slot.ID,
		SlotTime: slot.SlotTime.String(),
		IsActive: slot.IsActive,
	}
}

// FromDomainList converts a list of catalog slots, preserving order.
func FromDomainList(slots []*domain.TimeSlot) []*TimeSlotResponse {
	out := make([]*TimeSlotResponse, len(slots))
	for i, s := range slots {
		out[i] = FromDomain(s)
	}
	return out
}
