package department

import "github.com/InfElineas/Control-de-Asistencia/internal/pkg/validator"

type AddCalendarEntryRequest struct {
	Date  string  `json:"date"`
	Label *string `json:"label,omitempty"`
}

func (r *AddCalendarEntryRequest) Validate() error {
	if _, ok := validator.IsValidDate(r.Date); !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		}}
	}
	return nil
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CalendarEntryResponse struct {
	ID           string  `json:"id"`
	DepartmentID string  `json:"department_id"`
	Date         string  `json:"date"`
	Label        *string `json:"label,omitempty"`
}
