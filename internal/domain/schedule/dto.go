package schedule

import "github.com/InfElineas/Control-de-Asistencia/internal/pkg/validator"

type UpsertScheduleRequest struct {
	CheckinStartTime  string  `json:"checkin_start_time"`
	CheckinEndTime    string  `json:"checkin_end_time"`
	CheckoutStartTime *string `json:"checkout_start_time,omitempty"`
	CheckoutEndTime   *string `json:"checkout_end_time,omitempty"`
	Timezone          string  `json:"timezone"`
	AllowEarlyCheckin bool    `json:"allow_early_checkin"`
	AllowLateCheckout bool    `json:"allow_late_checkout"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidTimeOfDay(r.CheckinStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "checkin_start_time",
			Message: "checkin_start_time must be HH:MM:SS",
		})
	}
	if !validator.IsValidTimeOfDay(r.CheckinEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "checkin_end_time",
			Message: "checkin_end_time must be HH:MM:SS",
		})
	}
	if r.CheckoutStartTime != nil && !validator.IsValidTimeOfDay(*r.CheckoutStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "checkout_start_time",
			Message: "checkout_start_time must be HH:MM:SS",
		})
	}
	if r.CheckoutEndTime != nil && !validator.IsValidTimeOfDay(*r.CheckoutEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "checkout_end_time",
			Message: "checkout_end_time must be HH:MM:SS",
		})
	}
	if !validator.IsValidTimezone(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA zone name",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	// Window ordering is checked on parsed seconds, not on the strings.
	start, err1 := ParseTimeOfDay(r.CheckinStartTime)
	end, err2 := ParseTimeOfDay(r.CheckinEndTime)
	if err1 == nil && err2 == nil && start > end {
		return ErrInvalidTimeWindow
	}

	return nil
}

type ScheduleResponse struct {
	ID                string  `json:"id"`
	DepartmentID      string  `json:"department_id"`
	CheckinStartTime  string  `json:"checkin_start_time"`
	CheckinEndTime    string  `json:"checkin_end_time"`
	CheckoutStartTime *string `json:"checkout_start_time,omitempty"`
	CheckoutEndTime   *string `json:"checkout_end_time,omitempty"`
	Timezone          string  `json:"timezone"`
	AllowEarlyCheckin bool    `json:"allow_early_checkin"`
	AllowLateCheckout bool    `json:"allow_late_checkout"`
}

// WindowStatusResponse previews the current window state for the caller's
// department, used by the client to label the mark buttons.
type WindowStatusResponse struct {
	CheckinAllowed     bool    `json:"checkin_allowed"`
	CheckinMessage     *string `json:"checkin_message,omitempty"`
	CheckoutReached    bool    `json:"checkout_reached"`
	CurrentTimeLabel   string  `json:"current_time_label"`
	DepartmentTimezone string  `json:"department_timezone"`
}
