package department

import (
	"context"
	"time"
)

type DepartmentRepository interface {
	// GetByID retrieves a department by ID
	GetByID(ctx context.Context, id string) (Department, error)

	// List retrieves all departments
	List(ctx context.Context) ([]Department, error)
}

// CalendarRepository gives access to per-department non-working dates.
type CalendarRepository interface {
	// AddNonWorkingDay marks a date as non-working for a department
	AddNonWorkingDay(ctx context.Context, entry CalendarEntry) (CalendarEntry, error)

	// IsNonWorkingDay reports whether the date is marked non-working
	IsNonWorkingDay(ctx context.Context, departmentID string, date time.Time) (bool, error)

	// ListNonWorkingDays retrieves entries within a date range
	ListNonWorkingDays(ctx context.Context, departmentID string, from, to time.Time) ([]CalendarEntry, error)
}
