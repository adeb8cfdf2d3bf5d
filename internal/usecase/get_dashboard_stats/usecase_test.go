package get_dashboard_stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/booking-service/pkg/types"
)

// fakeCounter answers range queries from a per-range table keyed by
// "from..to".
type fakeCounter struct {
	counts map[string]int
	err    error
}

func (f *fakeCounter) CountOccupiedByDateRange(_ context.Context, from, to types.DateString) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[string(from)+".."+string(to)], nil
}

type fakeSlotCounter struct {
	active int
	err    error
}

func (f *fakeSlotCounter) CountActive(_ context.Context) (int, error) {
	return f.active, f.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Tuesday 2025-06-10: week runs Sunday 06-08 through Saturday 06-14,
// month runs 06-01 through 06-30.
var testNow = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func newTestUseCase(counter *fakeCounter, slots *fakeSlotCounter) *UseCase {
	uc := NewUseCase(counter, slots, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestExecute_Counters(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{
		"2025-06-10..2025-06-10": 3,
		"2025-06-08..2025-06-14": 12,
		"2025-06-01..2025-06-30": 40,
	}}
	uc := newTestUseCase(counter, &fakeSlotCounter{active: 10})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TodayCount)
	assert.Equal(t, 12, resp.WeekCount)
	assert.Equal(t, 40, resp.MonthCount)
	assert.Equal(t, 30, resp.OccupancyRate)
}

func TestExecute_NoActiveSlotsZeroOccupancy(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{
		"2025-06-10..2025-06-10": 3,
	}}
	uc := newTestUseCase(counter, &fakeSlotCounter{active: 0})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.OccupancyRate)
}

func TestExecute_NoBookingsZeroOccupancy(t *testing.T) {
	uc := newTestUseCase(&fakeCounter{counts: map[string]int{}}, &fakeSlotCounter{active: 10})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TodayCount)
	assert.Equal(t, 0, resp.OccupancyRate)
}

func TestExecute_OccupancyRounds(t *testing.T) {
	// 2 of 3 slots is 66.67%, rounded to 67.
	counter := &fakeCounter{counts: map[string]int{
		"2025-06-10..2025-06-10": 2,
	}}
	uc := newTestUseCase(counter, &fakeSlotCounter{active: 3})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 67, resp.OccupancyRate)
}

func TestExecute_StorageErrorsWrapped(t *testing.T) {
	boom := errors.New("db down")

	t.Run("counter fails", func(t *testing.T) {
		uc := newTestUseCase(&fakeCounter{err: boom}, &fakeSlotCounter{active: 10})
		_, err := uc.Execute(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("slot count fails", func(t *testing.T) {
		uc := newTestUseCase(&fakeCounter{counts: map[string]int{}}, &fakeSlotCounter{err: boom})
		_, err := uc.Execute(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestWeekBounds_SundayStart(t *testing.T) {
	// A Sunday is its own week start.
	sunday := time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC)
	from, to := weekBounds(sunday)
	assert.Equal(t, types.DateString("2025-06-08"), from)
	assert.Equal(t, types.DateString("2025-06-14"), to)

	// A Saturday closes the same week.
	saturday := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	from, to = weekBounds(saturday)
	assert.Equal(t, types.DateString("2025-06-08"), from)
	assert.Equal(t, types.DateString("2025-06-14"), to)
}

func TestMonthBounds(t *testing.T) {
	from, to := monthBounds(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, types.DateString("2025-02-01"), from)
	assert.Equal(t, types.DateString("2025-02-28"), to)
}
