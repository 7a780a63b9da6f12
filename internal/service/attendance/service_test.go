package attendance

import (
	"context"
	"fmt"
	"testing"
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
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarkRepo struct {
	marks     []attendance.Mark
	created   []attendance.Mark
	createErr error
	calls     []string
}

func (f *fakeMarkRepo) Create(_ context.Context, mark attendance.Mark) (attendance.Mark, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return attendance.Mark{}, f.createErr
	}
	mark.ID = "mark-1"
	mark.CreatedAt = mark.Timestamp
	f.created = append(f.created, mark)
	return mark, nil
}

func (f *fakeMarkRepo) ListBetween(_ context.Context, _ string, _, _ time.Time) ([]attendance.Mark, error) {
	f.calls = append(f.calls, "list")
	return f.marks, nil
}

func (f *fakeMarkRepo) AcquireSubmissionLock(_ context.Context, userID string) error {
	f.calls = append(f.calls, "lock "+userID)
	return nil
}

func (f *fakeMarkRepo) ListForUsersBetween(_ context.Context, _ []string, _, _ time.Time) (map[string][]attendance.Mark, error) {
	return nil, nil
}

type fakeScheduleRepo struct {
	sched schedule.DepartmentSchedule
	err   error
}

func (f *fakeScheduleRepo) GetByDepartment(_ context.Context, _ string) (schedule.DepartmentSchedule, error) {
	return f.sched, f.err
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, s schedule.DepartmentSchedule) (schedule.DepartmentSchedule, error) {
	return s, nil
}

func (f *fakeScheduleRepo) List(_ context.Context) ([]schedule.DepartmentSchedule, error) {
	return []schedule.DepartmentSchedule{f.sched}, nil
}

type fakeGeofenceRepo struct {
	cfg geofence.Config
	err error
}

func (f *fakeGeofenceRepo) Get(_ context.Context) (geofence.Config, error) {
	return f.cfg, f.err
}

func (f *fakeGeofenceRepo) Update(_ context.Context, cfg geofence.Config) (geofence.Config, error) {
	return cfg, nil
}

type fakeRestRepo struct {
	schedules []restday.Schedule
}

func (f *fakeRestRepo) Create(_ context.Context, s restday.Schedule) (restday.Schedule, error) {
	return s, nil
}

func (f *fakeRestRepo) ListByUser(_ context.Context, _ string) ([]restday.Schedule, error) {
	return f.schedules, nil
}

type fakeVacationRepo struct {
	onVacation bool
}

func (f *fakeVacationRepo) Create(_ context.Context, req vacation.Request) (vacation.Request, error) {
	return req, nil
}

func (f *fakeVacationRepo) GetByID(_ context.Context, _ string) (vacation.Request, error) {
	return vacation.Request{}, vacation.ErrRequestNotFound
}

func (f *fakeVacationRepo) ListByUser(_ context.Context, _ string) ([]vacation.Request, error) {
	return nil, nil
}

func (f *fakeVacationRepo) ListPending(_ context.Context, _ *string) ([]vacation.Request, error) {
	return nil, nil
}

func (f *fakeVacationRepo) UpdateStatus(_ context.Context, _ string, _ vacation.Status, _ *string, _ *string) (vacation.Request, error) {
	return vacation.Request{}, vacation.ErrRequestNotFound
}

func (f *fakeVacationRepo) HasApprovedVacationOn(_ context.Context, _ string, _ time.Time) (bool, error) {
	return f.onVacation, nil
}

func (f *fakeVacationRepo) SumDaysByStatus(_ context.Context, _ string, _ int, _ vacation.Status) (float64, error) {
	return 0, nil
}

type fakeCalendarRepo struct {
	nonWorking map[string]bool
}

func (f *fakeCalendarRepo) AddNonWorkingDay(_ context.Context, e department.CalendarEntry) (department.CalendarEntry, error) {
	return e, nil
}

func (f *fakeCalendarRepo) IsNonWorkingDay(_ context.Context, _ string, date time.Time) (bool, error) {
	return f.nonWorking[date.Format("2006-01-02")], nil
}

func (f *fakeCalendarRepo) ListNonWorkingDays(_ context.Context, _ string, from, to time.Time) ([]department.CalendarEntry, error) {
	var entries []department.CalendarEntry
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if f.nonWorking[d.Format("2006-01-02")] {
			entries = append(entries, department.CalendarEntry{
				DepartmentID: "dept-1",
				Date:         d,
			})
		}
	}
	return entries, nil
}

type serviceFixture struct {
	marks     *fakeMarkRepo
	schedules *fakeScheduleRepo
	fences    *fakeGeofenceRepo
	rests     *fakeRestRepo
	vacations *fakeVacationRepo
	calendar  *fakeCalendarRepo
	svc       *MarkServiceImpl
}

// limaSchedule is an 08:00-09:00 check-in window with checkout from 17:00,
// on a fixed-offset zone (UTC-5, no DST).
func limaSchedule() schedule.DepartmentSchedule {
	checkout := "17:00:00"
	return schedule.DepartmentSchedule{
		ID:                "sched-1",
		DepartmentID:      "dept-1",
		CheckinStartTime:  "08:00:00",
		CheckinEndTime:    "09:00:00",
		CheckoutStartTime: &checkout,
		Timezone:          "America/Lima",
	}
}

func newFixture(nowUTC time.Time) *serviceFixture {
	f := &serviceFixture{
		marks:     &fakeMarkRepo{},
		schedules: &fakeScheduleRepo{sched: limaSchedule()},
		fences: &fakeGeofenceRepo{cfg: geofence.Config{
			ID:                "geo-1",
			CenterLat:         0,
			CenterLng:         0,
			RadiusMeters:      100,
			AccuracyThreshold: 50,
		}},
		rests:     &fakeRestRepo{},
		vacations: &fakeVacationRepo{},
		calendar:  &fakeCalendarRepo{nonWorking: map[string]bool{}},
	}

	f.svc = &MarkServiceImpl{
		MarkRepository:     f.marks,
		ScheduleRepository: f.schedules,
		ConfigRepository:   f.fences,
		restScheduleRepo:   f.rests,
		vacationRepo:       f.vacations,
		calendarRepo:       f.calendar,
		cfg:                config.AttendanceConfig{LateToleranceMinutes: 5},
		now:                func() time.Time { return nowUTC },
		runInTx: func(ctx context.Context, _ *database.DB, fn func(ctx context.Context) error) error {
			f.marks.calls = append(f.marks.calls, "tx-begin")
			err := fn(ctx)
			f.marks.calls = append(f.marks.calls, "tx-end")
			return err
		},
	}
	return f
}

func authedContext(t *testing.T, role user.Role, departmentID *string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id": "user-1",
		"email":   "user@example.com",
		"role":    string(role),
	}
	if departmentID != nil {
		claims["department_id"] = *departmentID
	}

	token, _, err := tokenAuth.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func f64(v float64) *float64 { return &v }

func employeeCtx(t *testing.T) context.Context {
	dept := "dept-1"
	return authedContext(t, user.RoleEmployee, &dept)
}

// utcAtLima returns the UTC instant for a Lima wall-clock time on the date.
func utcAtLima(hour, minute, second int) time.Time {
	loc, _ := time.LoadLocation("America/Lima")
	return time.Date(2026, 3, 2, hour, minute, second, 0, loc).UTC()
}

func insideMarkRequest(markType string) attendance.SubmitMarkRequest {
	return attendance.SubmitMarkRequest{
		MarkType:  markType,
		Latitude:  f64(0),
		Longitude: f64(0),
		Accuracy:  f64(10),
	}
}

func requireDenied(t *testing.T, err error, code attendance.Code) *attendance.Denial {
	t.Helper()
	denial, ok := attendance.AsDenial(err)
	require.True(t, ok, "expected a denial, got %v", err)
	assert.Equal(t, code, denial.Code)
	return denial
}

func TestSubmitMark_GlobalManagerAlwaysUnauthorized(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))
	dept := "dept-1"
	ctx := authedContext(t, user.RoleGlobalManager, &dept)

	_, err := f.svc.SubmitMark(ctx, insideMarkRequest("IN"))

	requireDenied(t, err, attendance.CodeUnauthorized)
	assert.Empty(t, f.marks.created)
}

func TestSubmitMark_NoClaims(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))

	_, err := f.svc.SubmitMark(context.Background(), insideMarkRequest("IN"))

	requireDenied(t, err, attendance.CodeUnauthorized)
}

func TestSubmitMark_InvalidMarkType(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))

	_, err := f.svc.SubmitMark(employeeCtx(t), attendance.SubmitMarkRequest{MarkType: "LUNCH"})

	denial := requireDenied(t, err, attendance.CodeInvalidMarkType)
	assert.Equal(t, "Tipo de marcaje inválido", denial.Reason)
}

func TestSubmitMark_VacationWinsOverEverything(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))
	f.vacations.onVacation = true
	// Rest day configured too: vacation is evaluated first.
	f.rests.schedules = []restday.Schedule{{
		ID:            "rest-1",
		UserID:        "user-1",
		DaysOfWeek:    []int{1, 4},
		EffectiveFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}

	_, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("IN"))

	requireDenied(t, err, attendance.CodeOnVacation)
	assert.Empty(t, f.marks.created)
}

func TestSubmitMark_RestDay(t *testing.T) {
	// 2026-03-02 is a Monday (weekday 1).
	f := newFixture(utcAtLima(8, 30, 0))
	f.rests.schedules = []restday.Schedule{{
		ID:            "rest-1",
		UserID:        "user-1",
		DaysOfWeek:    []int{1, 4},
		EffectiveFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}

	_, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("IN"))

	denial := requireDenied(t, err, attendance.CodeRestDay)
	assert.Equal(t, "Hoy es tu día de descanso", denial.Reason)
}

func TestSubmitMark_InDuplicate(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))
	f.marks.marks = []attendance.Mark{{
		ID:        "prev",
		UserID:    "user-1",
		MarkType:  attendance.MarkIn,
		Timestamp: utcAtLima(8, 5, 0),
	}}

	_, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("IN"))

	requireDenied(t, err, attendance.CodeForbidden)
}

func TestSubmitMark_OutWithoutIn(t *testing.T) {
	f := newFixture(utcAtLima(17, 30, 0))

	_, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("OUT"))

	requireDenied(t, err, attendance.CodeForbidden)
}

func TestSubmitMark_DayClosedAfterOut(t *testing.T) {
	// The closing OUT is terminal: neither mark type is accepted again
	// until the next department-local day.
	closed := []attendance.Mark{
		{ID: "m1", MarkType: attendance.MarkIn, Timestamp: utcAtLima(8, 0, 0)},
		{ID: "m2", MarkType: attendance.MarkOut, Timestamp: utcAtLima(8, 10, 0)},
	}

	for _, markType := range []string{"IN", "OUT"} {
		t.Run(markType, func(t *testing.T) {
			f := newFixture(utcAtLima(8, 30, 0))
			f.marks.marks = closed

			_, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest(markType))

			denial := requireDenied(t, err, attendance.CodeForbidden)
			assert.Equal(t, "Ya registraste tu salida", denial.Reason)
			assert.Empty(t, f.marks.created)
		})
	}
}

func TestSubmitMark_LocksUserBeforeReadingDay(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))

	resp, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("IN"))

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	// The per-user lock must be taken inside the transaction before the
	// day's marks are read, or two first-INs on an empty day both pass.
	assert.Equal(t, []string{"tx-begin", "lock user-1", "list", "create", "tx-end"}, f.marks.calls)
}

func TestSubmitMark_InsertTimeoutMapsToConnectionError(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))
	f.marks.createErr = fmt.Errorf("insert mark: %w", context.DeadlineExceeded)

	_, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("IN"))

	denial := requireDenied(t, err, attendance.CodeConnectionError)
	assert.Equal(t, "No se pudo conectar con el servidor", denial.Reason)
}

func TestSubmitMark_NoGeofenceConfigured(t *testing.T) {
	t.Run("explicit outside flag is honored", func(t *testing.T) {
		f := newFixture(utcAtLima(8, 30, 0))
		f.fences.err = geofence.ErrConfigNotFound
		f.fences.cfg = geofence.Config{}

		outside := false
		req := insideMarkRequest("IN")
		req.InsideGeofence = &outside

		_, err := f.svc.SubmitMark(employeeCtx(t), req)

		requireDenied(t, err, attendance.CodeOutsideGeofence)
	})

	t.Run("absent flag is treated as inside", func(t *testing.T) {
		f := newFixture(utcAtLima(8, 30, 0))
		f.fences.err = geofence.ErrConfigNotFound
		f.fences.cfg = geofence.Config{}

		req := insideMarkRequest("IN")
		req.DistanceToCenter = f64(12.5)

		resp, err := f.svc.SubmitMark(employeeCtx(t), req)

		require.NoError(t, err)
		assert.True(t, resp.Allowed)
		require.Len(t, f.marks.created, 1)
		// With no configured zone there is nothing to recompute against,
		// so the client-reported distance is what gets persisted.
		require.NotNil(t, f.marks.created[0].DistanceToCenter)
		assert.Equal(t, 12.5, *f.marks.created[0].DistanceToCenter)
	})
}

func TestSubmitMark_InWindow(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		allowed bool
		message string
	}{
		{
			name:    "one minute before start is denied",
			now:     utcAtLima(7, 59, 0),
			allowed: false,
			message: "Entrada anticipada no permitida. Horario: 08:00 - 09:00 (America/Lima)",
		},
		{
			name:    "window start is allowed",
			now:     utcAtLima(8, 0, 0),
			allowed: true,
		},
		{
			name:    "one second past end is denied",
			now:     utcAtLima(9, 0, 1),
			allowed: false,
			message: "Hora de entrada excedida. Horario: 08:00 - 09:00 (America/Lima)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.now)

			resp, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("IN"))

			if tt.allowed {
				require.NoError(t, err)
				assert.True(t, resp.Allowed)
				assert.Equal(t, "Entrada registrada correctamente", resp.Message)
				return
			}

			denial := requireDenied(t, err, attendance.CodeForbidden)
			assert.Equal(t, tt.message, denial.Reason)
		})
	}
}

func TestSubmitMark_InOutsideGeofence(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))
	inside := true

	req := attendance.SubmitMarkRequest{
		MarkType:  "IN",
		Latitude:  f64(1),
		Longitude: f64(1),
		Accuracy:  f64(10),
		// Client asserts inside; submitted coordinates say otherwise and
		// the server recomputation wins.
		InsideGeofence: &inside,
	}

	_, err := f.svc.SubmitMark(employeeCtx(t), req)

	denial := requireDenied(t, err, attendance.CodeOutsideGeofence)
	assert.Equal(t, "Debes estar dentro de la zona permitida para marcar asistencia", denial.Reason)
}

func TestSubmitMark_InPoorAccuracyBlocked(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))
	f.fences.cfg.BlockOnPoorAccuracy = true

	req := insideMarkRequest("IN")
	req.Accuracy = f64(500)

	_, err := f.svc.SubmitMark(employeeCtx(t), req)

	requireDenied(t, err, attendance.CodeOutsideGeofence)
}

func TestSubmitMark_OutCheckoutGate(t *testing.T) {
	withIn := []attendance.Mark{{
		ID:        "m1",
		UserID:    "user-1",
		MarkType:  attendance.MarkIn,
		Timestamp: utcAtLima(8, 30, 0),
	}}

	t.Run("inside before checkout time is denied", func(t *testing.T) {
		f := newFixture(utcAtLima(16, 59, 0))
		f.marks.marks = withIn

		_, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("OUT"))

		requireDenied(t, err, attendance.CodeOutNotAllowedYet)
	})

	t.Run("inside at checkout time is allowed", func(t *testing.T) {
		f := newFixture(utcAtLima(17, 0, 0))
		f.marks.marks = withIn

		resp, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("OUT"))

		require.NoError(t, err)
		assert.True(t, resp.Allowed)
		assert.Equal(t, "Salida registrada correctamente", resp.Message)
	})

	t.Run("outside the zone is always allowed", func(t *testing.T) {
		f := newFixture(utcAtLima(12, 0, 0))
		f.marks.marks = withIn

		req := attendance.SubmitMarkRequest{
			MarkType:  "OUT",
			Latitude:  f64(1),
			Longitude: f64(1),
			Accuracy:  f64(10),
		}

		resp, err := f.svc.SubmitMark(employeeCtx(t), req)

		require.NoError(t, err)
		assert.True(t, resp.Allowed)
		require.Len(t, f.marks.created, 1)
		assert.False(t, f.marks.created[0].InsideGeofence)
	})
}

func TestSubmitMark_PersistsServerComputedDistance(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))

	req := insideMarkRequest("IN")
	req.DistanceToCenter = f64(99999) // client-sent value is ignored

	resp, err := f.svc.SubmitMark(employeeCtx(t), req)

	require.NoError(t, err)
	require.Len(t, f.marks.created, 1)
	created := f.marks.created[0]
	require.NotNil(t, created.DistanceToCenter)
	assert.Equal(t, float64(0), *created.DistanceToCenter)
	assert.True(t, created.InsideGeofence)
	assert.False(t, created.Blocked)
	assert.Equal(t, resp.Mark.ID, created.ID)
}

func TestSubmitMark_NoScheduleConfigured(t *testing.T) {
	f := newFixture(utcAtLima(8, 30, 0))
	f.schedules.err = schedule.ErrScheduleNotConfigured
	f.schedules.sched = schedule.DepartmentSchedule{}

	_, err := f.svc.SubmitMark(employeeCtx(t), insideMarkRequest("IN"))

	denial := requireDenied(t, err, attendance.CodeForbidden)
	assert.Equal(t, "Departamento sin horario configurado", denial.Reason)
}

func TestGetToday_Eligibility(t *testing.T) {
	tests := []struct {
		name       string
		marks      []attendance.Mark
		canMarkIn  bool
		canMarkOut bool
	}{
		{
			name:      "fresh day allows IN only",
			canMarkIn: true,
		},
		{
			name: "after IN only OUT",
			marks: []attendance.Mark{
				{ID: "m1", MarkType: attendance.MarkIn, Timestamp: utcAtLima(8, 0, 0)},
			},
			canMarkOut: true,
		},
		{
			name: "closing OUT ends the day",
			marks: []attendance.Mark{
				{ID: "m1", MarkType: attendance.MarkIn, Timestamp: utcAtLima(8, 0, 0)},
				{ID: "m2", MarkType: attendance.MarkOut, Timestamp: utcAtLima(12, 0, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(utcAtLima(14, 0, 0))
			f.marks.marks = tt.marks

			resp, err := f.svc.GetToday(employeeCtx(t))

			require.NoError(t, err)
			assert.Equal(t, tt.canMarkIn, resp.CanMarkIn)
			assert.Equal(t, tt.canMarkOut, resp.CanMarkOut)
			assert.Len(t, resp.Marks, len(tt.marks))
		})
	}
}

func TestGetHistory_StatusDerivation(t *testing.T) {
	f := newFixture(utcAtLima(20, 0, 0))

	// 2026-03-02 Monday through 2026-03-06 Friday.
	f.rests.schedules = []restday.Schedule{{
		ID:            "rest-1",
		UserID:        "user-1",
		DaysOfWeek:    []int{3}, // Wednesday 2026-03-04
		EffectiveFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	f.calendar.nonWorking["2026-03-05"] = true

	loc, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)
	atLima := func(day, hour, minute int) time.Time {
		return time.Date(2026, 3, day, hour, minute, 0, 0, loc).UTC()
	}

	f.marks.marks = []attendance.Mark{
		// Monday: on time, full span.
		{ID: "m1", UserID: "user-1", MarkType: attendance.MarkIn, Timestamp: atLima(2, 8, 30)},
		{ID: "m2", UserID: "user-1", MarkType: attendance.MarkOut, Timestamp: atLima(2, 17, 15)},
		// Tuesday: first IN past 09:05 deadline (09:00 end + 5 tolerance).
		{ID: "m3", UserID: "user-1", MarkType: attendance.MarkIn, Timestamp: atLima(3, 9, 10)},
	}

	resp, err := f.svc.GetHistory(employeeCtx(t), attendance.HistoryFilter{
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 5)

	byDate := map[string]attendance.HistoryDay{}
	for _, d := range resp.Days {
		byDate[d.Date] = d
	}

	assert.Equal(t, attendance.StatusPresente, byDate["2026-03-02"].Status)
	assert.Equal(t, attendance.StatusTarde, byDate["2026-03-03"].Status)
	assert.Equal(t, attendance.StatusDescanso, byDate["2026-03-04"].Status)
	assert.Equal(t, attendance.StatusNoLaborable, byDate["2026-03-05"].Status)
	assert.Equal(t, attendance.StatusAusente, byDate["2026-03-06"].Status)

	monday := byDate["2026-03-02"]
	require.NotNil(t, monday.FirstIn)
	require.NotNil(t, monday.LastOut)
	assert.Equal(t, "08:30:00", *monday.FirstIn)
	assert.Equal(t, "17:15:00", *monday.LastOut)

	// Days are returned newest first.
	assert.Equal(t, "2026-03-06", resp.Days[0].Date)
	assert.Equal(t, "2026-03-02", resp.Days[4].Date)
}

func TestGetHistory_InvalidRange(t *testing.T) {
	f := newFixture(utcAtLima(12, 0, 0))

	_, err := f.svc.GetHistory(employeeCtx(t), attendance.HistoryFilter{
		StartDate: "03/02/2026",
		EndDate:   "2026-03-06",
	})

	assert.Error(t, err)
}
