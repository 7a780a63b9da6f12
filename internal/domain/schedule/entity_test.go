package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule() DepartmentSchedule {
	checkout := "17:00:00"
	return DepartmentSchedule{
		ID:                "sched-1",
		DepartmentID:      "dept-1",
		CheckinStartTime:  "08:00:00",
		CheckinEndTime:    "09:00:00",
		CheckoutStartTime: &checkout,
		Timezone:          "America/Lima",
	}
}

// limaTime builds an instant whose Lima wall clock reads h:m:s. Lima has a
// fixed -05:00 offset, no DST.
func limaTime(h, m, s int) time.Time {
	return time.Date(2026, 3, 2, h+5, m, s, 0, time.UTC)
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00:00", 0, false},
		{"08:00:00", 28800, false},
		{"09:00", 32400, false},
		{"23:59:59", 86399, false},
		{"24:00:00", 0, true},
		{"08:60:00", 0, true},
		{"08:00:60", 0, true},
		{"8am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestIsWithinCheckinWindow(t *testing.T) {
	sched := testSchedule()

	tests := []struct {
		name    string
		now     time.Time
		allowed bool
		message string
	}{
		{"one second before start", limaTime(7, 59, 59), false,
			"Entrada anticipada no permitida. Horario: 08:00 - 09:00 (America/Lima)"},
		{"exactly at start", limaTime(8, 0, 0), true, ""},
		{"inside window", limaTime(8, 30, 0), true, ""},
		{"exactly at end", limaTime(9, 0, 0), true, ""},
		{"one second past end", limaTime(9, 0, 1), false,
			"Hora de entrada excedida. Horario: 08:00 - 09:00 (America/Lima)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := sched.IsWithinCheckinWindow(tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, check.Allowed)
			assert.Equal(t, tt.message, check.Message)
		})
	}
}

func TestIsWithinCheckinWindow_EarlyCheckinAllowed(t *testing.T) {
	sched := testSchedule()
	sched.AllowEarlyCheckin = true

	check, err := sched.IsWithinCheckinWindow(limaTime(6, 0, 0))
	require.NoError(t, err)
	assert.True(t, check.Allowed)

	// Past the window end is denied regardless of the early flag.
	check, err = sched.IsWithinCheckinWindow(limaTime(9, 0, 1))
	require.NoError(t, err)
	assert.False(t, check.Allowed)
}

func TestIsWithinCheckinWindow_InvalidTimezone(t *testing.T) {
	sched := testSchedule()
	sched.Timezone = "Not/AZone"

	_, err := sched.IsWithinCheckinWindow(limaTime(8, 30, 0))
	assert.Error(t, err)
}

func TestHasReachedCheckoutTime(t *testing.T) {
	sched := testSchedule()

	reached, err := sched.HasReachedCheckoutTime(limaTime(16, 59, 59))
	require.NoError(t, err)
	assert.False(t, reached)

	reached, err = sched.HasReachedCheckoutTime(limaTime(17, 0, 0))
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestHasReachedCheckoutTime_NoWindowConfigured(t *testing.T) {
	sched := testSchedule()
	sched.CheckoutStartTime = nil

	reached, err := sched.HasReachedCheckoutTime(limaTime(23, 0, 0))
	require.NoError(t, err)
	assert.False(t, reached)
}

func TestCheckinDeadline(t *testing.T) {
	sched := testSchedule()

	deadline, err := sched.CheckinDeadline(0)
	require.NoError(t, err)
	assert.Equal(t, 9*3600, deadline)

	deadline, err = sched.CheckinDeadline(5)
	require.NoError(t, err)
	assert.Equal(t, 9*3600+300, deadline)
}
