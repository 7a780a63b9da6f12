package department

import "context"

// Service exposes departments and their non-working calendar.
type Service interface {
	// List retrieves all departments
	List(ctx context.Context) ([]DepartmentResponse, error)

	// AddNonWorkingDay marks a date as non-working for a department
	// (global manager only)
	AddNonWorkingDay(ctx context.Context, departmentID string, req AddCalendarEntryRequest) (CalendarEntryResponse, error)

	// ListNonWorkingDays retrieves a department's non-working dates in a range
	ListNonWorkingDays(ctx context.Context, departmentID string, from, to string) ([]CalendarEntryResponse, error)
}
