package get_available_slots

import (
	"context"
	"time"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

// TimeSlotCatalog supplies the active slot catalog, ordered by slot time.
type TimeSlotCatalog interface {
	ListActive(ctx context.Context) ([]*domain.TimeSlot, error)
}

// AppointmentLedger supplies the date's appointments for occupancy checks.
type AppointmentLedger interface {
	ListByDate(ctx context.Context, date types.DateString) ([]*domain.Appointment, error)
}

// ClosureChecker is the "is the business open this day" predicate.
type ClosureChecker interface {
	IsDateClosed(ctx context.Context, date types.DateString) (bool, error)
}

// BlockProvider supplies the date's active slot blocks.
type BlockProvider interface {
	ListBlocksForDate(ctx context.Context, date types.DateString) ([]*domain.SlotBlock, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
