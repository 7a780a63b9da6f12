package department

import "time"

type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalendarEntry marks a single date as non-working for a department.
// Days without an entry are working days.
type CalendarEntry struct {
	ID           string
	DepartmentID string
	Date         time.Time
	Label        *string
	CreatedAt    time.Time
}
