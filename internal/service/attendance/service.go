package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/config"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/attendance"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/department"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/geofence"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/restday"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/schedule"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/vacation"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/database"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/geo"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
	"github.com/InfElineas/Control-de-Asistencia/internal/repository/postgresql"
	"github.com/jackc/pgx/v5/pgconn"
)

type MarkServiceImpl struct {
	db *database.DB
	attendance.MarkRepository
	schedule.ScheduleRepository
	geofence.ConfigRepository
	restScheduleRepo restday.ScheduleRepository
	vacationRepo     vacation.RequestRepository
	calendarRepo     department.CalendarRepository
	cfg              config.AttendanceConfig
	now              func() time.Time
	runInTx          func(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error
}

func NewMarkService(
	db *database.DB,
	markRepo attendance.MarkRepository,
	scheduleRepo schedule.ScheduleRepository,
	geofenceRepo geofence.ConfigRepository,
	restScheduleRepo restday.ScheduleRepository,
	vacationRepo vacation.RequestRepository,
	calendarRepo department.CalendarRepository,
	cfg config.AttendanceConfig,
) attendance.MarkService {
	return &MarkServiceImpl{
		db:                 db,
		MarkRepository:     markRepo,
		ScheduleRepository: scheduleRepo,
		ConfigRepository:   geofenceRepo,
		restScheduleRepo:   restScheduleRepo,
		vacationRepo:       vacationRepo,
		calendarRepo:       calendarRepo,
		cfg:                cfg,
		now:                time.Now,
		runInTx:            postgresql.WithTransaction,
	}
}

// markToResponse converts a persisted mark to its API shape.
func markToResponse(m attendance.Mark) attendance.MarkResponse {
	return attendance.MarkResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		MarkType:         string(m.MarkType),
		Timestamp:        m.Timestamp.UTC().Format(time.RFC3339),
		Latitude:         m.Latitude,
		Longitude:        m.Longitude,
		Accuracy:         m.Accuracy,
		DistanceToCenter: m.DistanceToCenter,
		InsideGeofence:   m.InsideGeofence,
		Blocked:          m.Blocked,
		BlockReason:      m.BlockReason,
	}
}

// denyInfra maps a storage failure to the contract's infrastructure codes.
// The cause is logged; only the generic Spanish message reaches the user.
func denyInfra(err error, code attendance.Code, reason string, op string) error {
	slog.Error("attendance validation infrastructure failure", "op", op, "error", err)
	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return attendance.Deny(attendance.CodeConnectionError, "No se pudo conectar con el servidor")
	}
	return attendance.Deny(code, reason)
}

// dayBounds returns the [start, end) instants of the department-local day
// containing the given instant.
func dayBounds(at time.Time, loc *time.Location) (time.Time, time.Time) {
	local := at.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// dateOnly normalizes an instant to its department-local calendar date, as
// a midnight-UTC value suitable for DATE column comparison.
func dateOnly(at time.Time, loc *time.Location) time.Time {
	local := at.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// SubmitMark implements attendance.MarkService. The guards run in a fixed
// order: role, vacation, rest day, mark-sequence eligibility, check-in
// window, geofence for IN, checkout threshold for OUT. The eligibility
// check and the insert share one transaction holding the user's advisory
// lock, so two near-simultaneous submissions cannot both pass even when
// the day has no rows yet.
func (s *MarkServiceImpl) SubmitMark(ctx context.Context, req attendance.SubmitMarkRequest) (attendance.SubmitMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitMarkResponse{}, err
	}
	markType, _ := attendance.ParseMarkType(req.MarkType)

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return attendance.SubmitMarkResponse{}, attendance.Deny(attendance.CodeUnauthorized, "No autorizado")
	}

	switch claims.Role {
	case user.RoleEmployee, user.RoleDepartmentHead:
	case user.RoleGlobalManager:
		return attendance.SubmitMarkResponse{}, attendance.Deny(attendance.CodeUnauthorized, "No autorizado")
	default:
		return attendance.SubmitMarkResponse{}, attendance.Deny(attendance.CodeUnauthorized, "No autorizado")
	}

	if claims.DepartmentID == nil {
		return attendance.SubmitMarkResponse{}, attendance.Deny(attendance.CodeForbidden, "Departamento sin horario configurado")
	}

	nowUTC := s.now().UTC()

	sched, err := s.ScheduleRepository.GetByDepartment(ctx, *claims.DepartmentID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotConfigured) {
			return attendance.SubmitMarkResponse{}, attendance.Deny(attendance.CodeForbidden, "Departamento sin horario configurado")
		}
		return attendance.SubmitMarkResponse{}, denyInfra(err, attendance.CodeValidationError, "Error al validar asistencia", "get schedule")
	}

	loc, err := sched.Location()
	if err != nil {
		slog.Error("department schedule has invalid timezone", "department_id", sched.DepartmentID, "timezone", sched.Timezone, "error", err)
		return attendance.SubmitMarkResponse{}, attendance.Deny(attendance.CodeInternalError, "Error interno del servidor")
	}

	today := dateOnly(nowUTC, loc)

	onVacation, err := s.vacationRepo.HasApprovedVacationOn(ctx, claims.UserID, today)
	if err != nil {
		return attendance.SubmitMarkResponse{}, denyInfra(err, attendance.CodeValidationError, "Error al validar asistencia", "check vacation")
	}
	if onVacation {
		return attendance.SubmitMarkResponse{}, attendance.Deny(attendance.CodeOnVacation, "Tienes vacaciones aprobadas para hoy")
	}

	restSchedules, err := s.restScheduleRepo.ListByUser(ctx, claims.UserID)
	if err != nil {
		return attendance.SubmitMarkResponse{}, denyInfra(err, attendance.CodeValidationError, "Error al validar asistencia", "list rest schedules")
	}
	if restday.IsRestDay(restSchedules, today) {
		return attendance.SubmitMarkResponse{}, attendance.Deny(attendance.CodeRestDay, "Hoy es tu día de descanso")
	}

	inside, distance, err := s.evaluateGeofence(ctx, req)
	if err != nil {
		return attendance.SubmitMarkResponse{}, err
	}

	dayStart, dayEnd := dayBounds(nowUTC, loc)

	var saved attendance.Mark
	err = s.runInTx(ctx, s.db, func(txCtx context.Context) error {
		if err := s.MarkRepository.AcquireSubmissionLock(txCtx, claims.UserID); err != nil {
			return denyInfra(err, attendance.CodeValidationError, "Error al validar asistencia", "acquire submission lock")
		}

		marks, err := s.MarkRepository.ListBetween(txCtx, claims.UserID, dayStart, dayEnd)
		if err != nil {
			return denyInfra(err, attendance.CodeValidationError, "Error al validar asistencia", "list today marks")
		}

		// The closing OUT ends the day for both mark types.
		if len(marks) > 0 && marks[len(marks)-1].MarkType == attendance.MarkOut {
			return attendance.Deny(attendance.CodeForbidden, "Ya registraste tu salida")
		}

		eligibility := attendance.EligibilityFromMarks(marks)
		if markType == attendance.MarkIn && !eligibility.CanMarkIn {
			return attendance.Deny(attendance.CodeForbidden, "Ya registraste tu entrada")
		}
		if markType == attendance.MarkOut && !eligibility.CanMarkOut {
			return attendance.Deny(attendance.CodeForbidden, "Debes registrar tu entrada antes de marcar salida")
		}

		if markType == attendance.MarkIn {
			window, err := sched.IsWithinCheckinWindow(nowUTC)
			if err != nil {
				slog.Error("check-in window evaluation failed", "department_id", sched.DepartmentID, "error", err)
				return attendance.Deny(attendance.CodeInternalError, "Error interno del servidor")
			}
			if !window.Allowed {
				return attendance.Deny(attendance.CodeForbidden, window.Message)
			}
			if !inside {
				return attendance.Deny(attendance.CodeOutsideGeofence, "Debes estar dentro de la zona permitida para marcar asistencia")
			}
		}

		// Leaving the zone is itself a valid trigger to check out, so the
		// checkout threshold only gates an OUT from inside the fence.
		if markType == attendance.MarkOut && inside {
			reached, err := sched.HasReachedCheckoutTime(nowUTC)
			if err != nil {
				slog.Error("checkout threshold evaluation failed", "department_id", sched.DepartmentID, "error", err)
				return attendance.Deny(attendance.CodeInternalError, "Error interno del servidor")
			}
			if !reached {
				return attendance.Deny(attendance.CodeOutNotAllowedYet, "Aún no es hora de salida")
			}
		}

		mark := attendance.Mark{
			UserID:           claims.UserID,
			MarkType:         markType,
			Timestamp:        nowUTC,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			Accuracy:         req.Accuracy,
			DistanceToCenter: distance,
			InsideGeofence:   inside,
			Blocked:          false,
		}

		saved, err = s.MarkRepository.Create(txCtx, mark)
		if err != nil {
			return denyInfra(err, attendance.CodeInsertError, "Error al registrar asistencia", "insert mark")
		}
		return nil
	})
	if err != nil {
		return attendance.SubmitMarkResponse{}, err
	}

	message := "Entrada registrada correctamente"
	if markType == attendance.MarkOut {
		message = "Salida registrada correctamente"
	}

	return attendance.SubmitMarkResponse{
		Success: true,
		Allowed: true,
		Mark:    markToResponse(saved),
		Message: message,
	}, nil
}

// evaluateGeofence resolves the caller's position against the configured
// zone. With coordinates present the distance is recomputed server-side;
// the client's inside_geofence flag is only honored as a fallback when no
// sample was submitted, which preserves the pre-existing submission shape.
func (s *MarkServiceImpl) evaluateGeofence(ctx context.Context, req attendance.SubmitMarkRequest) (bool, *float64, error) {
	cfg, err := s.ConfigRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, geofence.ErrConfigNotFound) {
			// No zone configured yet: fall back to the client reading.
			return req.InsideGeofence == nil || *req.InsideGeofence, req.DistanceToCenter, nil
		}
		return false, nil, denyInfra(err, attendance.CodeValidationError, "Error al validar asistencia", "get geofence config")
	}

	eval := geo.Evaluate(cfg.Fence(), req.Latitude, req.Longitude, req.Accuracy)
	if eval == nil {
		return req.InsideGeofence == nil || *req.InsideGeofence, req.DistanceToCenter, nil
	}

	inside := eval.Inside
	if cfg.BlockOnPoorAccuracy && !eval.AccuracyOK {
		inside = false
	}
	d := float64(eval.Distance)
	return inside, &d, nil
}

// GetToday implements attendance.MarkService.
func (s *MarkServiceImpl) GetToday(ctx context.Context) (attendance.TodayResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, attendance.Deny(attendance.CodeUnauthorized, "No autorizado")
	}

	loc := time.UTC
	if claims.DepartmentID != nil {
		sched, err := s.ScheduleRepository.GetByDepartment(ctx, *claims.DepartmentID)
		if err == nil {
			if schedLoc, locErr := sched.Location(); locErr == nil {
				loc = schedLoc
			}
		} else if !errors.Is(err, schedule.ErrScheduleNotConfigured) {
			return attendance.TodayResponse{}, fmt.Errorf("failed to resolve department schedule: %w", err)
		}
	}

	dayStart, dayEnd := dayBounds(s.now().UTC(), loc)

	marks, err := s.MarkRepository.ListBetween(ctx, claims.UserID, dayStart, dayEnd)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to list today's marks: %w", err)
	}

	eligibility := attendance.EligibilityFromMarks(marks)

	resp := attendance.TodayResponse{
		Marks:      make([]attendance.MarkResponse, 0, len(marks)),
		CanMarkIn:  eligibility.CanMarkIn,
		CanMarkOut: eligibility.CanMarkOut,
	}
	for _, m := range marks {
		resp.Marks = append(resp.Marks, markToResponse(m))
	}

	return resp, nil
}

// GetHistory implements attendance.MarkService. One row per date in the
// range, newest first, each carrying the derived display status.
func (s *MarkServiceImpl) GetHistory(ctx context.Context, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.HistoryResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return attendance.HistoryResponse{}, attendance.Deny(attendance.CodeUnauthorized, "No autorizado")
	}

	startDate, _ := time.Parse("2006-01-02", filter.StartDate)
	endDate, _ := time.Parse("2006-01-02", filter.EndDate)
	if endDate.Before(startDate) {
		return attendance.HistoryResponse{Days: []attendance.HistoryDay{}}, nil
	}

	var sched *schedule.DepartmentSchedule
	loc := time.UTC
	if claims.DepartmentID != nil {
		found, err := s.ScheduleRepository.GetByDepartment(ctx, *claims.DepartmentID)
		if err == nil {
			sched = &found
			if schedLoc, locErr := found.Location(); locErr == nil {
				loc = schedLoc
			}
		} else if !errors.Is(err, schedule.ErrScheduleNotConfigured) {
			return attendance.HistoryResponse{}, fmt.Errorf("failed to resolve department schedule: %w", err)
		}
	}

	rangeStart := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, loc)
	rangeEnd := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)

	marks, err := s.MarkRepository.ListBetween(ctx, claims.UserID, rangeStart, rangeEnd)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to list marks: %w", err)
	}

	restSchedules, err := s.restScheduleRepo.ListByUser(ctx, claims.UserID)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to list rest schedules: %w", err)
	}

	nonWorking := map[string]bool{}
	if claims.DepartmentID != nil {
		entries, err := s.calendarRepo.ListNonWorkingDays(ctx, *claims.DepartmentID, startDate, endDate)
		if err != nil {
			return attendance.HistoryResponse{}, fmt.Errorf("failed to list non-working days: %w", err)
		}
		for _, e := range entries {
			nonWorking[e.Date.Format("2006-01-02")] = true
		}
	}

	marksByDate := map[string][]attendance.Mark{}
	for _, m := range marks {
		key := m.Timestamp.In(loc).Format("2006-01-02")
		marksByDate[key] = append(marksByDate[key], m)
	}

	resp := attendance.HistoryResponse{Days: []attendance.HistoryDay{}}
	for date := endDate; !date.Before(startDate); date = date.AddDate(0, 0, -1) {
		key := date.Format("2006-01-02")
		day := attendance.HistoryDay{
			Date:  key,
			Marks: []attendance.MarkResponse{},
		}

		dayMarks := marksByDate[key]
		for _, m := range dayMarks {
			day.Marks = append(day.Marks, markToResponse(m))
		}

		day.Status = s.deriveStatus(date, dayMarks, restSchedules, nonWorking[key], sched, loc)

		if firstIn := firstOfType(dayMarks, attendance.MarkIn); firstIn != nil {
			t := firstIn.Timestamp.In(loc).Format("15:04:05")
			day.FirstIn = &t
		}
		if lastOut := lastOfType(dayMarks, attendance.MarkOut); lastOut != nil {
			t := lastOut.Timestamp.In(loc).Format("15:04:05")
			day.LastOut = &t
		}

		resp.Days = append(resp.Days, day)
	}

	return resp, nil
}

// deriveStatus resolves the per-date facts and delegates to the domain
// status derivation.
func (s *MarkServiceImpl) deriveStatus(
	date time.Time,
	dayMarks []attendance.Mark,
	restSchedules []restday.Schedule,
	nonWorking bool,
	sched *schedule.DepartmentSchedule,
	loc *time.Location,
) attendance.DayStatus {
	deadline := -1
	if sched != nil {
		if d, err := sched.CheckinDeadline(s.cfg.LateToleranceMinutes); err == nil {
			deadline = d
		}
	}

	var firstIn *time.Time
	if m := firstOfType(dayMarks, attendance.MarkIn); m != nil {
		firstIn = &m.Timestamp
	}

	return attendance.DeriveStatus(attendance.DayContext{
		RestDay:         restday.IsRestDay(restSchedules, date),
		NonWorking:      nonWorking,
		DeadlineSeconds: deadline,
	}, firstIn, loc)
}

func firstOfType(marks []attendance.Mark, t attendance.MarkType) *attendance.Mark {
	for i := range marks {
		if marks[i].MarkType == t {
			return &marks[i]
		}
	}
	return nil
}

func lastOfType(marks []attendance.Mark, t attendance.MarkType) *attendance.Mark {
	for i := len(marks) - 1; i >= 0; i-- {
		if marks[i].MarkType == t {
			return &marks[i]
		}
	}
	return nil
}
