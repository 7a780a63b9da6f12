package restday

import "github.com/InfElineas/Control-de-Asistencia/internal/pkg/validator"

type CreateScheduleRequest struct {
	DaysOfWeek    []int   `json:"days_of_week"`
	EffectiveFrom string  `json:"effective_from"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be YYYY-MM-DD",
		})
	}

	seen := make(map[int]bool)
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "days_of_week",
				Message: "days_of_week values must be between 0 and 6",
			})
			break
		}
		if seen[d] {
			errs = append(errs, validator.ValidationError{
				Field:   "days_of_week",
				Message: "days_of_week must not repeat days",
			})
			break
		}
		seen[d] = true
	}

	if len(errs) > 0 {
		return errs
	}

	// Separation invariant is enforced at creation time, not only in the UI.
	return ValidateSeparation(r.DaysOfWeek)
}

type ScheduleResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	DaysOfWeek    []int   `json:"days_of_week"`
	EffectiveFrom string  `json:"effective_from"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type ListSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Current   *ScheduleResponse  `json:"current,omitempty"`
}
