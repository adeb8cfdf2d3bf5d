package get_dashboard_stats

import (
	"context"
	"time"

	"github.com/agendalivre/booking-service/pkg/types"
)

// AppointmentCounter counts non-cancelled appointments in a closed date
// range.
type AppointmentCounter interface {
	CountOccupiedByDateRange(ctx context.Context, from, to types.DateString) (int, error)
}

// SlotCounter counts the active catalog entries.
type SlotCounter interface {
	CountActive(ctx context.Context) (int, error)
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
	Error(format string, v ...interface{})
}
