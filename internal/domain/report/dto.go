package report

import "github.com/InfElineas/Control-de-Asistencia/internal/domain/attendance"

// MemberStatus is one row of the department head's daily view.
type MemberStatus struct {
	UserID   string               `json:"user_id"`
	FullName string               `json:"full_name"`
	Status   attendance.DayStatus `json:"status"`
	FirstIn  *string              `json:"first_in,omitempty"`
	LastOut  *string              `json:"last_out,omitempty"`
}

type DepartmentReportResponse struct {
	DepartmentID string         `json:"department_id"`
	Date         string         `json:"date"`
	Members      []MemberStatus `json:"members"`
	Present      int            `json:"present"`
	Late         int            `json:"late"`
	Absent       int            `json:"absent"`
	Resting      int            `json:"resting"`
}

// DepartmentSummary is one row of the global manager's panel.
type DepartmentSummary struct {
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	HeadCount      int     `json:"head_count"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	PresenceRate   float64 `json:"presence_rate"`
}

type GlobalReportResponse struct {
	Date        string              `json:"date"`
	Departments []DepartmentSummary `json:"departments"`
}
