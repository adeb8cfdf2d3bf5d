package get_available_slots

import (
	getAvailableSlots "github.com/agendalivre/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse is one bookable slot.
type SlotResponse struct {
	ID       string `json:"id"`
	SlotTime string `json:"slotTime"`
}

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case result to the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{ID: s.ID, SlotTime: s.SlotTime.String()}
	}
	return &AvailableSlotsResponse{
		Date:  resp.Date.String(),
		Slots: slots,
	}
}
