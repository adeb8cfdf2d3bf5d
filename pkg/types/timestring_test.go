package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeStringValidate(t *testing.T) {
	valid := []string{"00:00", "09:00", "12:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "9:00", "24:00", "12:60", "12-30", "12:3", "noon", " 09:00"}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestTimeStringMinutes(t *testing.T) {
	m, err := TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = TimeString("25:00").Minutes()
	assert.Error(t, err)
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	got, err = TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	// Shifting past midnight is not representable.
	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(now))
}

func TestDateStringValidate(t *testing.T) {
	assert.NoError(t, DateString("2025-06-10").Validate())
	assert.NoError(t, DateString("2024-02-29").Validate())

	invalid := []string{"", "2025-6-10", "10-06-2025", "2025-02-30", "2025-13-01", "tomorrow"}
	for _, s := range invalid {
		assert.Error(t, DateString(s).Validate(), s)
	}
}

func TestDateStringWeekday(t *testing.T) {
	// 2025-06-10 is a Tuesday.
	wd, err := DateString("2025-06-10").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Tuesday, wd)

	wd, err = DateString("2025-06-15").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)
}

func TestDateStringOrdering(t *testing.T) {
	assert.True(t, DateString("2025-06-10").IsBefore("2025-06-11"))
	assert.True(t, DateString("2025-12-01").IsAfter("2025-06-11"))
}
