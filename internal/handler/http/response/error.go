package response

import (
	"errors"
	"net/http"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/attendance"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/auth"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/department"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/geofence"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/restday"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/schedule"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/vacation"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Every branch matches
// a declared error value; nothing here inspects message text.
func HandleError(w http.ResponseWriter, err error) {
	// Mark submission denials carry their own body shape and status.
	if denial, ok := attendance.AsDenial(err); ok {
		MarkDenied(w, denial)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, jwt.ErrNoClaims):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// Role policy
	case errors.Is(err, user.ErrGlobalManagerOnly):
		Forbidden(w, "Global manager role required")
	case errors.Is(err, user.ErrDepartmentHeadOrManager):
		Forbidden(w, "Department head or global manager role required")
	case errors.Is(err, vacation.ErrGlobalManagerBarred):
		Forbidden(w, err.Error())
	case errors.Is(err, vacation.ErrNotRequester):
		Forbidden(w, "Only the requester may cancel this request")

	// Missing resources
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, geofence.ErrConfigNotFound):
		NotFound(w, "Geofence configuration not found")
	case errors.Is(err, schedule.ErrScheduleNotConfigured):
		NotFound(w, "Departamento sin horario configurado")
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, attendance.ErrMarkNotFound):
		NotFound(w, "Attendance mark not found")

	// Conflicts
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, vacation.ErrAlreadyProcessed):
		Conflict(w, "Vacation request already processed")

	// Malformed domain input
	case errors.Is(err, restday.ErrInsufficientSeparation),
		errors.Is(err, restday.ErrInvalidDayOfWeek),
		errors.Is(err, restday.ErrDuplicateDayOfWeek),
		errors.Is(err, schedule.ErrInvalidTimeWindow),
		errors.Is(err, vacation.ErrInvalidDateRange),
		errors.Is(err, vacation.ErrInvalidDecision),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrDepartmentNotAssigned):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
