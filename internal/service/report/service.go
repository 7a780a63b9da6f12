package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/config"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/attendance"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/department"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/report"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/restday"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/schedule"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
)

type ServiceImpl struct {
	userRepo       user.UserRepository
	markRepo       attendance.MarkRepository
	scheduleRepo   schedule.ScheduleRepository
	restRepo       restday.ScheduleRepository
	calendarRepo   department.CalendarRepository
	departmentRepo department.DepartmentRepository
	cfg            config.AttendanceConfig
	now            func() time.Time
}

func NewService(
	userRepo user.UserRepository,
	markRepo attendance.MarkRepository,
	scheduleRepo schedule.ScheduleRepository,
	restRepo restday.ScheduleRepository,
	calendarRepo department.CalendarRepository,
	departmentRepo department.DepartmentRepository,
	cfg config.AttendanceConfig,
) report.Service {
	return &ServiceImpl{
		userRepo:       userRepo,
		markRepo:       markRepo,
		scheduleRepo:   scheduleRepo,
		restRepo:       restRepo,
		calendarRepo:   calendarRepo,
		departmentRepo: departmentRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

// departmentDay resolves a department's local day bounds, date and TARDE
// deadline; a missing schedule degrades to UTC and disables lateness.
func (s *ServiceImpl) departmentDay(ctx context.Context, departmentID string, at time.Time) (*time.Location, time.Time, time.Time, time.Time, int, error) {
	loc := time.UTC
	deadline := -1

	sched, err := s.scheduleRepo.GetByDepartment(ctx, departmentID)
	if err == nil {
		if schedLoc, locErr := sched.Location(); locErr == nil {
			loc = schedLoc
		}
		if d, dErr := sched.CheckinDeadline(s.cfg.LateToleranceMinutes); dErr == nil {
			deadline = d
		}
	} else if !errors.Is(err, schedule.ErrScheduleNotConfigured) {
		return nil, time.Time{}, time.Time{}, time.Time{}, 0, fmt.Errorf("failed to get department schedule: %w", err)
	}

	local := at.In(loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	return loc, dayStart, dayEnd, date, deadline, nil
}

// memberStatuses derives today's status per member; the returned label is
// the department-local date the statuses were computed for.
func (s *ServiceImpl) memberStatuses(ctx context.Context, departmentID string, members []user.User) ([]report.MemberStatus, string, error) {
	nowUTC := s.now().UTC()

	loc, dayStart, dayEnd, date, deadline, err := s.departmentDay(ctx, departmentID, nowUTC)
	if err != nil {
		return nil, "", err
	}
	dateLabel := date.Format("2006-01-02")

	nonWorking, err := s.calendarRepo.IsNonWorkingDay(ctx, departmentID, date)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check non-working day: %w", err)
	}

	userIDs := make([]string, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.ID)
	}

	marksByUser, err := s.markRepo.ListForUsersBetween(ctx, userIDs, dayStart, dayEnd)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list marks: %w", err)
	}

	statuses := make([]report.MemberStatus, 0, len(members))
	for _, member := range members {
		restSchedules, err := s.restRepo.ListByUser(ctx, member.ID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to list rest schedules: %w", err)
		}

		marks := marksByUser[member.ID]

		var firstIn, lastOut *time.Time
		for i := range marks {
			switch marks[i].MarkType {
			case attendance.MarkIn:
				if firstIn == nil {
					firstIn = &marks[i].Timestamp
				}
			case attendance.MarkOut:
				lastOut = &marks[i].Timestamp
			}
		}

		status := attendance.DeriveStatus(attendance.DayContext{
			RestDay:         restday.IsRestDay(restSchedules, date),
			NonWorking:      nonWorking,
			DeadlineSeconds: deadline,
		}, firstIn, loc)

		row := report.MemberStatus{
			UserID:   member.ID,
			FullName: member.FullName,
			Status:   status,
		}
		if firstIn != nil {
			t := firstIn.In(loc).Format("15:04:05")
			row.FirstIn = &t
		}
		if lastOut != nil {
			t := lastOut.In(loc).Format("15:04:05")
			row.LastOut = &t
		}

		statuses = append(statuses, row)
	}

	return statuses, dateLabel, nil
}

// DepartmentToday implements report.Service.
func (s *ServiceImpl) DepartmentToday(ctx context.Context) (report.DepartmentReportResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return report.DepartmentReportResponse{}, err
	}

	switch claims.Role {
	case user.RoleDepartmentHead, user.RoleGlobalManager:
	case user.RoleEmployee:
		return report.DepartmentReportResponse{}, user.ErrDepartmentHeadOrManager
	default:
		return report.DepartmentReportResponse{}, user.ErrDepartmentHeadOrManager
	}
	if claims.DepartmentID == nil {
		return report.DepartmentReportResponse{}, user.ErrDepartmentNotAssigned
	}

	members, err := s.userRepo.ListByDepartment(ctx, *claims.DepartmentID)
	if err != nil {
		return report.DepartmentReportResponse{}, fmt.Errorf("failed to list department members: %w", err)
	}

	statuses, dateLabel, err := s.memberStatuses(ctx, *claims.DepartmentID, members)
	if err != nil {
		return report.DepartmentReportResponse{}, err
	}

	resp := report.DepartmentReportResponse{
		DepartmentID: *claims.DepartmentID,
		Date:         dateLabel,
		Members:      statuses,
	}
	for _, row := range statuses {
		switch row.Status {
		case attendance.StatusPresente:
			resp.Present++
		case attendance.StatusTarde:
			resp.Late++
		case attendance.StatusAusente:
			resp.Absent++
		case attendance.StatusDescanso:
			resp.Resting++
		}
	}

	return resp, nil
}

// GlobalToday implements report.Service.
func (s *ServiceImpl) GlobalToday(ctx context.Context) (report.GlobalReportResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return report.GlobalReportResponse{}, err
	}
	if claims.Role != user.RoleGlobalManager {
		return report.GlobalReportResponse{}, user.ErrGlobalManagerOnly
	}

	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return report.GlobalReportResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}

	resp := report.GlobalReportResponse{
		Date:        s.now().UTC().Format("2006-01-02"),
		Departments: make([]report.DepartmentSummary, 0, len(departments)),
	}

	for _, dept := range departments {
		members, err := s.userRepo.ListByDepartment(ctx, dept.ID)
		if err != nil {
			return report.GlobalReportResponse{}, fmt.Errorf("failed to list members of %s: %w", dept.ID, err)
		}

		statuses, _, err := s.memberStatuses(ctx, dept.ID, members)
		if err != nil {
			return report.GlobalReportResponse{}, err
		}

		summary := report.DepartmentSummary{
			DepartmentID:   dept.ID,
			DepartmentName: dept.Name,
			HeadCount:      len(members),
		}
		for _, row := range statuses {
			switch row.Status {
			case attendance.StatusPresente, attendance.StatusTarde:
				summary.Present++
			case attendance.StatusAusente:
				summary.Absent++
			}
		}
		if summary.HeadCount > 0 {
			summary.PresenceRate = float64(summary.Present) / float64(summary.HeadCount)
		}

		resp.Departments = append(resp.Departments, summary)
	}

	return resp, nil
}
