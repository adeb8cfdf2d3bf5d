package create_appointment

import (
	"time"

	bookAppointment "github.com/agendalivre/booking-service/internal/usecase/book_appointment"
	"github.com/agendalivre/booking-service/pkg/types"
)

// CreateAppointmentRequest is the HTTP request model.
type CreateAppointmentRequest struct {
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	Date        string `json:"date"` // "2025-06-10"
	Time        string `json:"time"` // "09:00"
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
// Format validation happens in the use case, which reports every
// violated field at once.
func (r *CreateAppointmentRequest) ToUseCaseRequest() *bookAppointment.Request {
	return &bookAppointment.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Date:        types.DateString(r.Date),
		Time:        types.TimeString(r.Time),
	}
}

// FromUseCaseResponse converts the use case result to the HTTP response.
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
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
