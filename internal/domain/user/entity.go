package user

import "time"

// Role is the closed set of application roles. Every policy decision
// switches exhaustively over it; roles never travel as loose strings
// beyond the JWT claim boundary.
type Role string

const (
	RoleEmployee       Role = "employee"
	RoleDepartmentHead Role = "department_head"
	RoleGlobalManager  Role = "global_manager" // excluded from personal attendance/vacation flows
)

// ParseRole validates a role string coming from a claim or request body.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleDepartmentHead, RoleGlobalManager:
		return Role(s), true
	default:
		return "", false
	}
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	DepartmentID *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsGlobalManager checks if user holds the global manager role
func (u *User) IsGlobalManager() bool {
	return u.Role == RoleGlobalManager
}

// CanReviewVacations checks if user can review vacation requests
func (u *User) CanReviewVacations() bool {
	return u.Role == RoleDepartmentHead || u.Role == RoleGlobalManager
}

// CanRequestPersonalVacations checks if user may file personal vacation
// requests. Global managers are categorically barred.
func (u *User) CanRequestPersonalVacations() bool {
	switch u.Role {
	case RoleEmployee, RoleDepartmentHead:
		return true
	case RoleGlobalManager:
		return false
	}
	return false
}

// CanMarkAttendance checks if user participates in attendance flows at all.
func (u *User) CanMarkAttendance() bool {
	switch u.Role {
	case RoleEmployee, RoleDepartmentHead:
		return true
	case RoleGlobalManager:
		return false
	}
	return false
}
