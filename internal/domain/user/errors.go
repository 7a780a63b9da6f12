package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrInvalidRole             = errors.New("invalid role")
	ErrGlobalManagerOnly       = errors.New("only global managers can perform this action")
	ErrDepartmentHeadOrManager = errors.New("department head or global manager role required")
	ErrDepartmentNotAssigned   = errors.New("user has no department assigned")
)
