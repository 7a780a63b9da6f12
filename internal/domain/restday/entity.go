package restday

import (
	"sort"
	"time"
)

// MinSeparationDays is the minimum circular distance between any two
// configured rest days on the 7-day week.
const MinSeparationDays = 3

// Schedule is one rest-day configuration for a user. A user accumulates
// schedules over time; the one in force for a date is the most recent
// whose EffectiveFrom is not after it.
type Schedule struct {
	ID            string
	UserID        string
	DaysOfWeek    []int // 0=Sunday .. 6=Saturday
	EffectiveFrom time.Time
	Notes         *string
	CreatedAt     time.Time
}

// ValidateSeparation checks that every pair of selected days keeps the
// minimum circular distance. Empty and single-day selections are valid.
func ValidateSeparation(daysOfWeek []int) error {
	if len(daysOfWeek) < 2 {
		return nil
	}

	sorted := append([]int(nil), daysOfWeek...)
	sort.Ints(sorted)

	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			direct := sorted[j] - sorted[i]
			wrap := 7 - direct
			if min(direct, wrap) < MinSeparationDays {
				return ErrInsufficientSeparation
			}
		}
	}

	return nil
}

// CurrentSchedule picks the schedule in force for the given date: greatest
// EffectiveFrom that is on or before the date. Among equal EffectiveFrom
// values the largest ID wins so selection stays deterministic.
func CurrentSchedule(schedules []Schedule, date time.Time) *Schedule {
	day := date.Truncate(24 * time.Hour)

	var current *Schedule
	for i := range schedules {
		s := &schedules[i]
		if s.EffectiveFrom.After(day) {
			continue
		}
		if current == nil ||
			s.EffectiveFrom.After(current.EffectiveFrom) ||
			(s.EffectiveFrom.Equal(current.EffectiveFrom) && s.ID > current.ID) {
			current = s
		}
	}
	return current
}

// IsRestDay reports whether the date is a rest day under the schedule in
// force. False when the user has no effective schedule.
func IsRestDay(schedules []Schedule, date time.Time) bool {
	current := CurrentSchedule(schedules, date)
	if current == nil {
		return false
	}

	dayOfWeek := int(date.Weekday()) // 0=Sunday
	for _, d := range current.DaysOfWeek {
		if d == dayOfWeek {
			return true
		}
	}
	return false
}
