package restday

import "context"

// Service manages the caller's weekly rest-day configuration.
type Service interface {
	// Create appends a new schedule; earlier schedules remain as history
	Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	// List retrieves the caller's schedules plus the one currently in force
	List(ctx context.Context) (ListSchedulesResponse, error)
}
