package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeBalance(t *testing.T) {
	balance := ComputeBalance(120, DefaultAccrualRate, 3, 2)

	assert.Equal(t, 120, balance.WorkedDays)
	assert.InDelta(t, 10.0, balance.EarnedDays, 0.0001)
	assert.InDelta(t, 7.0, balance.AvailableDays, 0.0001)
	assert.Equal(t, 3.0, balance.ApprovedDays)
	assert.Equal(t, 2.0, balance.PendingDays)
}

func TestComputeBalance_NegativeAvailableSurfaces(t *testing.T) {
	balance := ComputeBalance(12, DefaultAccrualRate, 5, 0)

	assert.InDelta(t, 1.0, balance.EarnedDays, 0.0001)
	assert.InDelta(t, -4.0, balance.AvailableDays, 0.0001)
}

func TestComputeBalance_ZeroWorkedDays(t *testing.T) {
	balance := ComputeBalance(0, DefaultAccrualRate, 0, 0)

	assert.Equal(t, 0.0, balance.EarnedDays)
	assert.Equal(t, 0.0, balance.AvailableDays)
}

func TestRequestedDaysInclusive(t *testing.T) {
	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single day", start: "2026-03-02", end: "2026-03-02", want: 1},
		{name: "work week", start: "2026-03-02", end: "2026-03-06", want: 5},
		{name: "across month boundary", start: "2026-02-27", end: "2026-03-02", want: 4},
		{name: "inverted range", start: "2026-03-06", end: "2026-03-02", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequestedDaysInclusive(date(tt.start), date(tt.end)))
		})
	}
}
