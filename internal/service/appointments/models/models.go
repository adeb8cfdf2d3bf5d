// Package models holds the appointment views returned by the service:
// stored fields plus the read-time display-status projection.
package models

import (
	"time"

	"github.com/agendalivre/booking-service/internal/domain"
)

// AppointmentView is an appointment enriched with the projected display
// status ("overdue" is computed here, never stored).
type AppointmentView struct {
	ID            string
	ClientName    string
	ClientPhone   string
	Date          string
	Time          string
	Status        string
	DisplayStatus string
	CreatedAt     time.Time
}

// FromDomain builds the view of a single appointment as of now.
func FromDomain(appt *domain.Appointment, now time.Time) *AppointmentView {
	return &AppointmentView{
		ID:            appt.ID,
		ClientName:    appt.ClientName,
		ClientPhone:   appt.ClientPhone,
		Date:          appt.Date.String(),
		Time:          appt.Time.String(),
		Status:        string(appt.Status),
		DisplayStatus: appt.DisplayStatus(now),
		CreatedAt:     appt.CreatedAt,
	}
}

// FromDomainList builds views for a list of appointments, preserving order.
func FromDomainList(appts []*domain.Appointment, now time.Time) []*AppointmentView {
	views := make([]*AppointmentView, len(appts))
	for i, appt := range appts {
		views[i] = FromDomain(appt, now)
	}
	return views
}
