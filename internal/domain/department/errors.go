package department

import "errors"

var (
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrCalendarEntryExists   = errors.New("calendar entry already exists for that date")
	ErrCalendarEntryNotFound = errors.New("calendar entry not found")
)
