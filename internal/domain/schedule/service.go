package schedule

import "context"

// ScheduleService manages per-department attendance windows.
type ScheduleService interface {
	// Upsert creates or replaces a department's schedule (global manager only)
	Upsert(ctx context.Context, departmentID string, req UpsertScheduleRequest) (ScheduleResponse, error)

	// GetByDepartment retrieves one department's schedule
	GetByDepartment(ctx context.Context, departmentID string) (ScheduleResponse, error)

	// List retrieves every configured schedule
	List(ctx context.Context) ([]ScheduleResponse, error)

	// WindowStatus previews the caller's current check-in/checkout window state
	WindowStatus(ctx context.Context) (WindowStatusResponse, error)
}
