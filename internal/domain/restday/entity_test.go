package restday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeparation(t *testing.T) {
	tests := []struct {
		name    string
		days    []int
		wantErr bool
	}{
		{"empty", nil, false},
		{"single day", []int{3}, false},
		{"sunday and wednesday", []int{0, 3}, false},
		{"sunday and thursday", []int{0, 4}, false},
		{"adjacent days", []int{1, 2}, true},
		{"two apart", []int{0, 2}, true},
		{"wraps around the week", []int{0, 6}, true},
		{"saturday and wednesday", []int{3, 6}, false},
		{"three days cannot all keep distance", []int{0, 3, 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeparation(tt.days)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInsufficientSeparation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentSchedule(t *testing.T) {
	schedules := []Schedule{
		{ID: "a", UserID: "u1", DaysOfWeek: []int{0}, EffectiveFrom: date(2026, 1, 1)},
		{ID: "b", UserID: "u1", DaysOfWeek: []int{3}, EffectiveFrom: date(2026, 3, 1)},
	}

	current := CurrentSchedule(schedules, date(2026, 2, 15))
	require.NotNil(t, current)
	assert.Equal(t, "a", current.ID)

	current = CurrentSchedule(schedules, date(2026, 3, 1))
	require.NotNil(t, current)
	assert.Equal(t, "b", current.ID)

	assert.Nil(t, CurrentSchedule(schedules, date(2025, 12, 31)))
	assert.Nil(t, CurrentSchedule(nil, date(2026, 3, 1)))
}

func TestCurrentSchedule_TieBreaksOnID(t *testing.T) {
	schedules := []Schedule{
		{ID: "a", EffectiveFrom: date(2026, 3, 1)},
		{ID: "b", EffectiveFrom: date(2026, 3, 1)},
	}

	current := CurrentSchedule(schedules, date(2026, 3, 10))
	require.NotNil(t, current)
	assert.Equal(t, "b", current.ID)
}

func TestIsRestDay(t *testing.T) {
	// 2026-03-01 is a Sunday; the later schedule moves rest to Wednesday.
	schedules := []Schedule{
		{ID: "a", DaysOfWeek: []int{0}, EffectiveFrom: date(2026, 1, 1)},
		{ID: "b", DaysOfWeek: []int{3}, EffectiveFrom: date(2026, 3, 1)},
	}

	assert.True(t, IsRestDay(schedules, date(2026, 2, 1)))   // Sunday, old schedule
	assert.False(t, IsRestDay(schedules, date(2026, 3, 8)))  // Sunday, new schedule
	assert.True(t, IsRestDay(schedules, date(2026, 3, 4)))   // Wednesday, new schedule
	assert.False(t, IsRestDay(schedules, date(2026, 3, 2)))  // Monday
	assert.False(t, IsRestDay(nil, date(2026, 3, 4)))
}
