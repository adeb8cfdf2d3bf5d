package list_appointments

import (
	"time"

	"github.com/agendalivre/booking-service/internal/service/appointments/models"
)

// AppointmentResponse is the HTTP model of one ledger entry.
type AppointmentResponse struct {
	ID            string `json:"id"`
	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	DisplayStatus string `json:"displayStatus"`
	CreatedAt     string `json:"createdAt"`
}

// FromView converts one service view to the HTTP model.
func FromView(view *models.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            view.ID,
		ClientName:    view.ClientName,
		ClientPhone:   view.ClientPhone,
		Date:          view.Date,
		Time:          view.Time,
		Status:        view.Status,
		DisplayStatus: view.DisplayStatus,
		CreatedAt:     view.CreatedAt.Format(time.RFC3339),
	}
}

// FromViewList converts a list of views, preserving order.
func FromViewList(views []*models.AppointmentView) []*AppointmentResponse {
	out := make([]*AppointmentResponse, len(views))
	for i, v := range views {
		out[i] = FromView(v)
	}
	return out
}
