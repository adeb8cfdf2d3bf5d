package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/booking-service/pkg/ptr"
	"github.com/agendalivre/booking-service/pkg/types"
)

func TestClosureRuleValidate(t *testing.T) {
	tests := []struct {
		name    string
		rule    ClosureRule
		wantErr bool
	}{
		{
			name: "weekly with dayOfWeek",
			rule: ClosureRule{ClosureType: ClosureWeekly, DayOfWeek: ptr.Ptr(Tuesday), IsActive: true},
		},
		{
			name: "specific_date with date",
			rule: ClosureRule{ClosureType: ClosureSpecificDate, SpecificDate: ptr.Ptr(types.DateString("2025-06-10")), IsActive: true},
		},
		{
			name:    "weekly without dayOfWeek",
			rule:    ClosureRule{ClosureType: ClosureWeekly},
			wantErr: true,
		},
		{
			name: "weekly with both fields",
			rule: ClosureRule{
				ClosureType:  ClosureWeekly,
				DayOfWeek:    ptr.Ptr(Monday),
				SpecificDate: ptr.Ptr(types.DateString("2025-06-10")),
			},
			wantErr: true,
		},
		{
			name:    "specific_date without date",
			rule:    ClosureRule{ClosureType: ClosureSpecificDate},
			wantErr: true,
		},
		{
			name: "unknown weekday",
			rule: ClosureRule{ClosureType: ClosureWeekly, DayOfWeek: ptr.Ptr(Weekday("someday"))},
			wantErr: true,
		},
		{
			name:    "unknown closure type",
			rule:    ClosureRule{ClosureType: ClosureType("monthly")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClosureRuleMatches(t *testing.T) {
	// 2025-06-10 is a Tuesday.
	tuesday := types.DateString("2025-06-10")

	weekly := ClosureRule{ClosureType: ClosureWeekly, DayOfWeek: ptr.Ptr(Tuesday), IsActive: true}
	got, err := weekly.Matches(tuesday)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = weekly.Matches("2025-06-11")
	require.NoError(t, err)
	assert.False(t, got)

	oneOff := ClosureRule{ClosureType: ClosureSpecificDate, SpecificDate: ptr.Ptr(tuesday), IsActive: true}
	got, err = oneOff.Matches(tuesday)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = oneOff.Matches("2025-06-17")
	require.NoError(t, err)
	assert.False(t, got)

	inactive := ClosureRule{ClosureType: ClosureWeekly, DayOfWeek: ptr.Ptr(Tuesday), IsActive: false}
	got, err = inactive.Matches(tuesday)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestWeekdayFromTime(t *testing.T) {
	assert.Equal(t, Sunday, WeekdayFromTime(time.Sunday))
	assert.Equal(t, Monday, WeekdayFromTime(time.Monday))
	assert.Equal(t, Saturday, WeekdayFromTime(time.Saturday))
}

func TestSlotBlockValidate(t *testing.T) {
	block := SlotBlock{SpecificDate: "2025-06-10", StartTime: "10:00", EndTime: "10:30", IsActive: true}
	assert.NoError(t, block.Validate())

	reversed := SlotBlock{SpecificDate: "2025-06-10", StartTime: "10:30", EndTime: "10:00"}
	assert.Error(t, reversed.Validate())

	empty := SlotBlock{SpecificDate: "2025-06-10", StartTime: "10:00", EndTime: "10:00"}
	assert.Error(t, empty.Validate())

	badTime := SlotBlock{SpecificDate: "2025-06-10", StartTime: "10:00", EndTime: "26:00"}
	assert.Error(t, badTime.Validate())
}

func TestSlotBlockCoversHalfOpen(t *testing.T) {
	block := SlotBlock{SpecificDate: "2025-06-10", StartTime: "10:00", EndTime: "10:30", IsActive: true}

	got, err := block.Covers("10:00")
	require.NoError(t, err)
	assert.True(t, got, "start boundary is blocked")

	got, err = block.Covers("10:15")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = block.Covers("10:30")
	require.NoError(t, err)
	assert.False(t, got, "end boundary is not blocked")

	got, err = block.Covers("09:59")
	require.NoError(t, err)
	assert.False(t, got)

	inactive := block
	inactive.IsActive = false
	got, err = inactive.Covers("10:00")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestAppointmentOccupies(t *testing.T) {
	appt := Appointment{Status: StatusConfirmed}
	assert.True(t, appt.Occupies())

	appt.Status = StatusRescheduled
	assert.True(t, appt.Occupies())

	appt.Status = StatusCancelled
	assert.False(t, appt.Occupies())
}

func TestAppointmentDisplayStatus(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	future := Appointment{Date: "2025-06-10", Time: "14:00", Status: StatusConfirmed}
	assert.Equal(t, DisplayConfirmed, future.DisplayStatus(now))

	rescheduled := Appointment{Date: "2025-06-11", Time: "09:00", Status: StatusRescheduled}
	assert.Equal(t, DisplayRescheduled, rescheduled.DisplayStatus(now))

	pastDay := Appointment{Date: "2025-06-09", Time: "14:00", Status: StatusConfirmed}
	assert.Equal(t, DisplayOverdue, pastDay.DisplayStatus(now))

	earlierToday := Appointment{Date: "2025-06-10", Time: "11:30", Status: StatusRescheduled}
	assert.Equal(t, DisplayOverdue, earlierToday.DisplayStatus(now))

	// Exactly now is not yet overdue.
	atNow := Appointment{Date: "2025-06-10", Time: "12:00", Status: StatusConfirmed}
	assert.Equal(t, DisplayConfirmed, atNow.DisplayStatus(now))

	// Cancelled wins over overdue.
	cancelled := Appointment{Date: "2025-06-09", Time: "09:00", Status: StatusCancelled}
	assert.Equal(t, DisplayCancelled, cancelled.DisplayStatus(now))
}

func TestAppointmentPatch(t *testing.T) {
	empty := AppointmentPatch{}
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.ChangesSlot())

	nameOnly := AppointmentPatch{ClientName: ptr.Ptr("Maria Silva")}
	assert.False(t, nameOnly.IsEmpty())
	assert.False(t, nameOnly.ChangesSlot())

	moved := AppointmentPatch{Time: ptr.Ptr(types.TimeString("15:00"))}
	assert.True(t, moved.ChangesSlot())
}
