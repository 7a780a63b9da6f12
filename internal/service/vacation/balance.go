package vacation

import (
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/vacation"
)

// DefaultAccrualRate is the vacation days earned per worked day, roughly
// one day per month of attendance.
const DefaultAccrualRate = 0.0833333333

// ComputeBalance derives a yearly balance. Available days are earned minus
// approved, deliberately unclamped so reviewers see over-allocation;
// pending days are informative and do not reduce availability.
func ComputeBalance(workedDays int, accrualRate, approvedDays, pendingDays float64) vacation.Balance {
	earned := float64(workedDays) * accrualRate
	return vacation.Balance{
		WorkedDays:    workedDays,
		AccrualRate:   accrualRate,
		EarnedDays:    earned,
		ApprovedDays:  approvedDays,
		PendingDays:   pendingDays,
		AvailableDays: earned - approvedDays,
	}
}

// RequestedDaysInclusive counts the days a request spans, both endpoints
// included. Zero when the range is inverted.
func RequestedDaysInclusive(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
