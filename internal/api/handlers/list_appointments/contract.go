package list_appointments

import (
	"context"

	"github.com/agendalivre/booking-service/internal/service/appointments/models"
	"github.com/agendalivre/booking-service/pkg/types"
)

type AppointmentsService interface {
	ListAll(ctx context.Context) ([]*models.AppointmentView, error)
	ListByDate(ctx context.Context, date types.DateString) ([]*models.AppointmentView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
