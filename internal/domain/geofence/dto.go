package geofence

import "github.com/InfElineas/Control-de-Asistencia/internal/pkg/validator"

type UpdateConfigRequest struct {
	CenterLat           float64 `json:"center_lat"`
	CenterLng           float64 `json:"center_lng"`
	RadiusMeters        float64 `json:"radius_meters"`
	AccuracyThreshold   float64 `json:"accuracy_threshold"`
	BlockOnPoorAccuracy bool    `json:"block_on_poor_accuracy"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CenterLat < -90 || r.CenterLat > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "center_lat",
			Message: "center_lat must be between -90 and 90",
		})
	}
	if r.CenterLng < -180 || r.CenterLng > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "center_lng",
			Message: "center_lng must be between -180 and 180",
		})
	}
	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must be positive",
		})
	}
	if r.AccuracyThreshold <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy_threshold",
			Message: "accuracy_threshold must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConfigResponse struct {
	ID                  string  `json:"id"`
	CenterLat           float64 `json:"center_lat"`
	CenterLng           float64 `json:"center_lng"`
	RadiusMeters        float64 `json:"radius_meters"`
	AccuracyThreshold   float64 `json:"accuracy_threshold"`
	BlockOnPoorAccuracy bool    `json:"block_on_poor_accuracy"`
}
