package schedule

import "context"

// ScheduleRepository defines data access for department schedules.
// One schedule per department.
type ScheduleRepository interface {
	// GetByDepartment retrieves the schedule for a department
	GetByDepartment(ctx context.Context, departmentID string) (DepartmentSchedule, error)

	// Upsert creates or replaces the schedule for a department
	Upsert(ctx context.Context, s DepartmentSchedule) (DepartmentSchedule, error)

	// List retrieves all department schedules
	List(ctx context.Context) ([]DepartmentSchedule, error)
}
