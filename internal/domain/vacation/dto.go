package vacation

import "github.com/InfElineas/Control-de-Asistencia/internal/pkg/validator"

type CreateRequestRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if end.Before(start) {
		return ErrInvalidDateRange
	}

	return nil
}

type ReviewRequestRequest struct {
	ID            string  `json:"-"`
	Decision      string  `json:"decision"`
	ReviewComment *string `json:"review_comment,omitempty"`
}

func (r *ReviewRequestRequest) Validate() error {
	status, ok := ParseStatus(r.Decision)
	if !ok || (status != StatusApproved && status != StatusRejected) {
		return ErrInvalidDecision
	}
	return nil
}

type RequestResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	DepartmentID  string  `json:"department_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	RequestedDays int     `json:"requested_days"`
	Status        string  `json:"status"`
	Reason        *string `json:"reason,omitempty"`
	ReviewComment *string `json:"review_comment,omitempty"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type BalanceResponse struct {
	WorkedDays    int     `json:"worked_days"`
	AccrualRate   float64 `json:"accrual_rate"`
	EarnedDays    float64 `json:"earned_days"`
	ApprovedDays  float64 `json:"approved_days"`
	PendingDays   float64 `json:"pending_days"`
	AvailableDays float64 `json:"available_days"`
}

type OverviewResponse struct {
	Balance     BalanceResponse   `json:"balance"`
	MyRequests  []RequestResponse `json:"my_requests"`
	ReviewQueue []RequestResponse `json:"review_queue,omitempty"`
}
