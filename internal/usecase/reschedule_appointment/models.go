package reschedule_appointment

import (
	"time"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

// Request is a partial update: nil fields keep their stored value.
type Request struct {
	ID          string
	ClientName  *string
	ClientPhone *string
	Date        *types.DateString
	Time        *types.TimeString
	Status      *domain.AppointmentStatus
}

func (r *Request) patch() domain.AppointmentPatch {
	return domain.AppointmentPatch{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Date:        r.Date,
		Time:        r.Time,
		Status:      r.Status,
	}
}

// Response is the updated appointment.
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
