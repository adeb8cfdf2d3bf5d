package update_appointment

import (
	"time"

	"github.com/agendalivre/booking-service/internal/domain"
	rescheduleAppointment "github.com/agendalivre/booking-service/internal/usecase/reschedule_appointment"
	"github.com/agendalivre/booking-service/pkg/types"
)

// UpdateAppointmentRequest is a partial update: omitted fields keep
// their stored value.
type UpdateAppointmentRequest struct {
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request to the use case model.
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id string) *rescheduleAppointment.Request {
	req := &rescheduleAppointment.Request{
		ID:          id,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
	}
	if r.Date != nil {
		d := types.DateString(*r.Date)
		req.Date = &d
	}
	if r.Time != nil {
		t := types.TimeString(*r.Time)
		req.Time = &t
	}
	if r.Status != nil {
		s := domain.AppointmentStatus(*r.Status)
		req.Status = &s
	}
	return req
}

// FromUseCaseResponse converts the use case result to the HTTP response.
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		Date:        resp.Date.String(),
		Time:        resp.Time.String(),
		Status:      string(resp.Status),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
