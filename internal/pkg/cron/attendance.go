package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/config"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/attendance"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/department"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/restday"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/schedule"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
)

// AttendanceJobs aggregates the background sweeps over attendance data.
// Day statuses are derived on read, never written back, so the absence
// sweep only reports counts.
type AttendanceJobs struct {
	userRepo     user.UserRepository
	markRepo     attendance.MarkRepository
	scheduleRepo schedule.ScheduleRepository
	restRepo     restday.ScheduleRepository
	calendarRepo department.CalendarRepository
	deptRepo     department.DepartmentRepository
	cfg          config.AttendanceConfig
	now          func() time.Time
}

func NewAttendanceJobs(
	userRepo user.UserRepository,
	markRepo attendance.MarkRepository,
	scheduleRepo schedule.ScheduleRepository,
	restRepo restday.ScheduleRepository,
	calendarRepo department.CalendarRepository,
	deptRepo department.DepartmentRepository,
	cfg config.AttendanceConfig,
) *AttendanceJobs {
	return &AttendanceJobs{
		userRepo:     userRepo,
		markRepo:     markRepo,
		scheduleRepo: scheduleRepo,
		restRepo:     restRepo,
		calendarRepo: calendarRepo,
		deptRepo:     deptRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_sweep", 1*time.Hour, j.MarkAbsentSweep)
}

// MarkAbsentSweep logs, per department, how many members have no IN mark
// after the department's check-in deadline has passed for today. Purely
// observational; AUSENTE stays a derived status.
func (j *AttendanceJobs) MarkAbsentSweep(ctx context.Context) error {
	departments, err := j.deptRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list departments: %w", err)
	}

	for _, dept := range departments {
		absent, headcount, date, swept := j.sweepDepartment(ctx, dept)
		if swept && absent > 0 {
			slog.Info("Cron: members without check-in past deadline",
				"department_id", dept.ID,
				"department", dept.Name,
				"date", date,
				"absent", absent,
				"headcount", headcount)
		}
	}

	return nil
}

// sweepDepartment counts the department's members with no IN mark today.
// swept is false when the department is not sweepable right now (no
// schedule, window still open, non-working day, no members).
func (j *AttendanceJobs) sweepDepartment(ctx context.Context, dept department.Department) (absent, headcount int, date string, swept bool) {
	sched, err := j.scheduleRepo.GetByDepartment(ctx, dept.ID)
	if err != nil {
		// Departments without a schedule have no deadline to sweep.
		return 0, 0, "", false
	}
	loc, err := sched.Location()
	if err != nil {
		slog.Error("Cron: invalid department timezone", "department_id", dept.ID, "error", err)
		return 0, 0, "", false
	}

	deadline, err := sched.CheckinDeadline(j.cfg.LateToleranceMinutes)
	if err != nil {
		return 0, 0, "", false
	}
	local := j.now().In(loc)
	elapsed := local.Hour()*3600 + local.Minute()*60 + local.Second()
	if elapsed <= deadline {
		// Check-in window still open here.
		return 0, 0, "", false
	}

	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	// Calendar and rest-day lookups take the local calendar date at UTC
	// midnight; passing the raw local instant would slip a day near
	// midnight in offset zones.
	dateUTC := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	nonWorking, err := j.calendarRepo.IsNonWorkingDay(ctx, dept.ID, dateUTC)
	if err != nil {
		slog.Error("Cron: calendar lookup failed", "department_id", dept.ID, "error", err)
		return 0, 0, "", false
	}
	if nonWorking {
		return 0, 0, "", false
	}

	members, err := j.userRepo.ListByDepartment(ctx, dept.ID)
	if err != nil {
		slog.Error("Cron: failed to list members", "department_id", dept.ID, "error", err)
		return 0, 0, "", false
	}
	if len(members) == 0 {
		return 0, 0, "", false
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	marksByUser, err := j.markRepo.ListForUsersBetween(ctx, ids, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		slog.Error("Cron: failed to load marks", "department_id", dept.ID, "error", err)
		return 0, 0, "", false
	}

	for _, m := range members {
		schedules, err := j.restRepo.ListByUser(ctx, m.ID)
		if err == nil && restday.IsRestDay(schedules, dateUTC) {
			continue
		}
		hasIn := false
		for _, mark := range marksByUser[m.ID] {
			if mark.MarkType == attendance.MarkIn {
				hasIn = true
				break
			}
		}
		if !hasIn {
			absent++
		}
	}

	return absent, len(members), dateUTC.Format("2006-01-02"), true
}
