package vacation

import "errors"

var (
	ErrRequestNotFound  = errors.New("vacation request not found")
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
	ErrAlreadyProcessed = errors.New("vacation request has already been processed")
	ErrNotRequester     = errors.New("only the requester can cancel a vacation request")
	ErrInvalidDecision  = errors.New("decision must be approved or rejected")

	// ErrGlobalManagerBarred carries the user-facing message verbatim.
	ErrGlobalManagerBarred = errors.New("Los gestores globales no pueden solicitar vacaciones personales.")
)
