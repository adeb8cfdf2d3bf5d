package book_appointment

import (
	"context"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

// AppointmentLedger is the appointment store used by the booking flow.
// GetByDateTime must lock the occupant row when called inside a
// transaction so racing bookings serialize on the slot.
type AppointmentLedger interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByDateTime(ctx context.Context, date types.DateString, t types.TimeString) (*domain.Appointment, error)
}

// ClosureChecker is the "is the business open this day" predicate.
type ClosureChecker interface {
	IsDateClosed(ctx context.Context, date types.DateString) (bool, error)
}

// BlockChecker reports whether a time falls inside an active block range.
type BlockChecker interface {
	IsTimeBlocked(ctx context.Context, date types.DateString, t types.TimeString) (bool, error)
}

// TransactionManager runs the check-then-insert sequence atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
