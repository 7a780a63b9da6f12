package schedule

import "errors"

var (
	// ErrScheduleNotConfigured is the distinct "department has no schedule"
	// denial, surfaced as "Departamento sin horario configurado".
	ErrScheduleNotConfigured = errors.New("department has no schedule configured")

	ErrScheduleNotFound  = errors.New("department schedule not found")
	ErrInvalidTimeWindow = errors.New("checkin_start_time must not be after checkin_end_time")
)
