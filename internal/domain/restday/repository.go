package restday

import "context"

// ScheduleRepository defines data access for user rest schedules.
type ScheduleRepository interface {
	// Create inserts a new rest schedule row
	Create(ctx context.Context, s Schedule) (Schedule, error)

	// ListByUser retrieves all schedules for a user, newest effective_from first
	ListByUser(ctx context.Context, userID string) ([]Schedule, error)
}
