package attendance

import "github.com/InfElineas/Control-de-Asistencia/internal/pkg/validator"

// SubmitMarkRequest is the mark submission body. The geo fields are the
// caller's own reading; when coordinates are present the server recomputes
// distance and geofence membership instead of trusting the client flags.
type SubmitMarkRequest struct {
	MarkType         string   `json:"mark_type"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Accuracy         *float64 `json:"accuracy,omitempty"`
	DistanceToCenter *float64 `json:"distance_to_center,omitempty"`
	InsideGeofence   *bool    `json:"inside_geofence,omitempty"`
}

func (r *SubmitMarkRequest) Validate() error {
	if _, ok := ParseMarkType(r.MarkType); !ok {
		return Deny(CodeInvalidMarkType, "Tipo de marcaje inválido")
	}

	var errs validator.ValidationErrors
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if r.Accuracy != nil && *r.Accuracy < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy",
			Message: "accuracy must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	MarkType         string   `json:"mark_type"`
	Timestamp        string   `json:"timestamp"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Accuracy         *float64 `json:"accuracy"`
	DistanceToCenter *float64 `json:"distance_to_center"`
	InsideGeofence   bool     `json:"inside_geofence"`
	Blocked          bool     `json:"blocked"`
	BlockReason      *string  `json:"block_reason,omitempty"`
}

// SubmitMarkResponse is the success shape of the validation endpoint.
type SubmitMarkResponse struct {
	Success bool         `json:"success"`
	Allowed bool         `json:"allowed"`
	Mark    MarkResponse `json:"mark"`
	Message string       `json:"message"`
}

type TodayResponse struct {
	Marks      []MarkResponse `json:"marks"`
	CanMarkIn  bool           `json:"can_mark_in"`
	CanMarkOut bool           `json:"can_mark_out"`
}

type HistoryFilter struct {
	StartDate string
	EndDate   string
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	if _, ok := validator.IsValidDate(f.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HistoryDay is one derived row of the personal history view.
type HistoryDay struct {
	Date    string         `json:"date"`
	Status  DayStatus      `json:"status"`
	FirstIn *string        `json:"first_in,omitempty"`
	LastOut *string        `json:"last_out,omitempty"`
	Marks   []MarkResponse `json:"marks"`
}

type HistoryResponse struct {
	Days []HistoryDay `json:"days"`
}
