package book_appointment

import (
	"time"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

// Request carries the client-supplied booking fields.
type Request struct {
	ClientName  string
	ClientPhone string
	Date        types.DateString
	Time        types.TimeString
}

// Response is the persisted appointment.
type Response struct {
	ID          string
	ClientName  string
	ClientPhone string
	Date        types.DateString
	Time        types.TimeString
	Status      domain.AppointmentStatus
	CreatedAt   time.Time
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:          appt.ID,
		ClientName:  appt.ClientName,
		ClientPhone: appt.ClientPhone,
		Date:        appt.Date,
		Time:        appt.Time,
		Status:      appt.Status,
		CreatedAt:   appt.CreatedAt,
	}
}
