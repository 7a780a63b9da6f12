package vacation

import "time"

// Status of a vacation request. pending is the only non-terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// ParseStatus validates a status string from a request body.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return Status(s), true
	default:
		return "", false
	}
}

type Request struct {
	ID            string
	UserID        string
	DepartmentID  string
	StartDate     time.Time
	EndDate       time.Time
	RequestedDays int
	Status        Status
	Reason        *string
	ReviewComment *string
	ReviewedBy    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Balance is derived per user per year, never stored. Available days are
// deliberately not clamped at zero so reviewers can see over-allocation.
type Balance struct {
	WorkedDays    int
	AccrualRate   float64
	EarnedDays    float64
	ApprovedDays  float64
	PendingDays   float64
	AvailableDays float64
}
