package get_dashboard_stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/agendalivre/booking-service/pkg/types"
)

// UseCase aggregates the manager dashboard counters: today, the current
// week (Sunday through Saturday) and the current calendar month, each
// counting non-cancelled appointments.
type UseCase struct {
	appointments AppointmentCounter
	slots        SlotCounter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the dashboard stats use case.
func NewUseCase(appointments AppointmentCounter, slots SlotCounter, logger Logger) *UseCase {
	return &UseCase{
		appointments: appointments,
		slots:        slots,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute computes the counters for the current moment.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	today := types.NewDateString(now)

	weekStart, weekEnd := weekBounds(now)
	monthStart, monthEnd := monthBounds(now)

	todayCount, err := uc.appointments.CountOccupiedByDateRange(ctx, today, today)
	if err != nil {
		uc.logger.Error("GetDashboardStats: today count failed: %v", err)
		return nil, fmt.Errorf("%w: today count: %w", ErrInternal, err)
	}

	weekCount, err := uc.appointments.CountOccupiedByDateRange(ctx, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("GetDashboardStats: week count failed: %v", err)
		return nil, fmt.Errorf("%w: week count: %w", ErrInternal, err)
	}

	monthCount, err := uc.appointments.CountOccupiedByDateRange(ctx, monthStart, monthEnd)
	if err != nil {
		uc.logger.Error("GetDashboardStats: month count failed: %v", err)
		return nil, fmt.Errorf("%w: month count: %w", ErrInternal, err)
	}

	activeSlots, err := uc.slots.CountActive(ctx)
	if err != nil {
		uc.logger.Error("GetDashboardStats: active slot count failed: %v", err)
		return nil, fmt.Errorf("%w: active slot count: %w", ErrInternal, err)
	}

	resp := &Response{
		TodayCount:    todayCount,
		WeekCount:     weekCount,
		MonthCount:    monthCount,
		OccupancyRate: occupancyRate(todayCount, activeSlots),
	}

	uc.logger.Info("GetDashboardStats: today=%d week=%d month=%d occupancy=%d%%",
		resp.TodayCount, resp.WeekCount, resp.MonthCount, resp.OccupancyRate)
	return resp, nil
}

// weekBounds returns the Sunday and Saturday of the week containing t.
func weekBounds(t time.Time) (types.DateString, types.DateString) {
	// time.Weekday numbers Sunday as 0.
	start := t.AddDate(0, 0, -int(t.Weekday()))
	end := start.AddDate(0, 0, 6)
	return types.NewDateString(start), types.NewDateString(end)
}

// monthBounds returns the first and last day of the month containing t.
func monthBounds(t time.Time) (types.DateString, types.DateString) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return types.NewDateString(start), types.NewDateString(end)
}

// occupancyRate is today's count over the active catalog, as a rounded
// percentage. Zero when the catalog is empty.
func occupancyRate(todayCount, activeSlots int) int {
	if activeSlots <= 0 || todayCount <= 0 {
		return 0
	}
	return int(math.Round(float64(todayCount) / float64(activeSlots) * 100))
}
