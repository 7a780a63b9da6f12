package report

import "context"

// Service derives daily attendance views for reviewers. Statuses are
// computed on read; nothing here gates mark submission.
type Service interface {
	// DepartmentToday builds today's status per member of the caller's
	// department (department heads and global managers)
	DepartmentToday(ctx context.Context) (DepartmentReportResponse, error)

	// GlobalToday builds the per-department presence summary
	// (global managers only)
	GlobalToday(ctx context.Context) (GlobalReportResponse, error)
}
