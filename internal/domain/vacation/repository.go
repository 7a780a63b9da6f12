package vacation

import (
	"context"
	"time"
)

// RequestRepository defines data access for vacation requests.
type RequestRepository interface {
	// Create inserts a new pending request
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (Request, error)

	// ListByUser retrieves a user's requests, newest first
	ListByUser(ctx context.Context, userID string) ([]Request, error)

	// ListPending retrieves pending requests, oldest first; departmentID
	// narrows the queue for department heads
	ListPending(ctx context.Context, departmentID *string) ([]Request, error)

	// UpdateStatus transitions a request out of pending
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy *string, reviewComment *string) (Request, error)

	// HasApprovedVacationOn reports whether an approved request spans the date
	HasApprovedVacationOn(ctx context.Context, userID string, date time.Time) (bool, error)

	// SumDaysByStatus totals requested_days for a user's requests with the
	// given status whose start date falls in the year
	SumDaysByStatus(ctx context.Context, userID string, year int, status Status) (float64, error)
}

// WorkedDaysRepository counts distinct days with at least one IN mark,
// the basis of vacation accrual.
type WorkedDaysRepository interface {
	CountWorkedDays(ctx context.Context, userID string, year int) (int, error)
}
