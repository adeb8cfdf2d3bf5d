package reschedule_appointment

import (
	"context"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

// AppointmentLedger is the appointment store used by the reschedule flow.
type AppointmentLedger interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByDateTime(ctx context.Context, date types.DateString, t types.TimeString) (*domain.Appointment, error)
	Update(ctx context.Context, id string, patch domain.AppointmentPatch) (*domain.Appointment, error)
}

// TransactionManager runs the check-then-update sequence atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
