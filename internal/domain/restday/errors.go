package restday

import "errors"

var (
	// ErrInsufficientSeparation carries the user-facing message verbatim.
	ErrInsufficientSeparation = errors.New("Los días de descanso deben tener al menos 3 días de separación entre ellos")

	ErrInvalidDayOfWeek   = errors.New("days_of_week values must be between 0 and 6")
	ErrDuplicateDayOfWeek = errors.New("days_of_week must not repeat days")
	ErrScheduleNotFound   = errors.New("rest schedule not found")
)
