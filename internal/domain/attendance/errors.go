package attendance

import "errors"

// Code is the machine-readable denial/error code of the mark submission
// contract. Clients switch on the code; the message is for humans only.
type Code string

const (
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeInvalidMarkType  Code = "INVALID_MARK_TYPE"
	CodeForbidden        Code = "FORBIDDEN"
	CodeOutsideGeofence  Code = "OUTSIDE_GEOFENCE"
	CodeOutNotAllowedYet Code = "OUT_NOT_ALLOWED_YET"
	CodeOnVacation       Code = "ON_VACATION"
	CodeRestDay          Code = "REST_DAY"
	CodeValidationError  Code = "VALIDATION_ERROR"
	CodeInsertError      Code = "INSERT_ERROR"
	CodeInternalError    Code = "INTERNAL_ERROR"
	CodeConnectionError  Code = "CONNECTION_ERROR"
)

// Denial is a synchronous guard failure: a machine code plus the Spanish
// reason surfaced verbatim to the end user. Denials are never retried
// automatically.
type Denial struct {
	Code   Code
	Reason string
}

func (d *Denial) Error() string {
	return d.Reason
}

// Deny builds a denial error.
func Deny(code Code, reason string) error {
	return &Denial{Code: code, Reason: reason}
}

// AsDenial unwraps a denial from an error chain.
func AsDenial(err error) (*Denial, bool) {
	var d *Denial
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

var (
	ErrMarkNotFound = errors.New("attendance mark not found")
)
