package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/audit"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/schedule"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
)

type ServiceImpl struct {
	schedule.ScheduleRepository
	auditRepo audit.Repository
	now       func() time.Time
}

func NewScheduleService(repo schedule.ScheduleRepository, auditRepo audit.Repository) schedule.ScheduleService {
	return &ServiceImpl{
		ScheduleRepository: repo,
		auditRepo:          auditRepo,
		now:                time.Now,
	}
}

func toResponse(s schedule.DepartmentSchedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:                s.ID,
		DepartmentID:      s.DepartmentID,
		CheckinStartTime:  s.CheckinStartTime,
		CheckinEndTime:    s.CheckinEndTime,
		CheckoutStartTime: s.CheckoutStartTime,
		CheckoutEndTime:   s.CheckoutEndTime,
		Timezone:          s.Timezone,
		AllowEarlyCheckin: s.AllowEarlyCheckin,
		AllowLateCheckout: s.AllowLateCheckout,
	}
}

// Upsert implements schedule.ScheduleService.
func (s *ServiceImpl) Upsert(ctx context.Context, departmentID string, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if claims.Role != user.RoleGlobalManager {
		return schedule.ScheduleResponse{}, user.ErrGlobalManagerOnly
	}

	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	saved, err := s.ScheduleRepository.Upsert(ctx, schedule.DepartmentSchedule{
		DepartmentID:      departmentID,
		CheckinStartTime:  req.CheckinStartTime,
		CheckinEndTime:    req.CheckinEndTime,
		CheckoutStartTime: req.CheckoutStartTime,
		CheckoutEndTime:   req.CheckoutEndTime,
		Timezone:          req.Timezone,
		AllowEarlyCheckin: req.AllowEarlyCheckin,
		AllowLateCheckout: req.AllowLateCheckout,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to upsert schedule: %w", err)
	}

	if err := s.auditRepo.Record(ctx, audit.Entry{
		UserID:    claims.UserID,
		Action:    audit.ActionScheduleUpdated,
		TableName: "department_schedules",
		RecordID:  &saved.ID,
		NewData: map[string]interface{}{
			"department_id":      saved.DepartmentID,
			"checkin_start_time": saved.CheckinStartTime,
			"checkin_end_time":   saved.CheckinEndTime,
			"timezone":           saved.Timezone,
		},
	}); err != nil {
		slog.Error("failed to record schedule audit entry", "error", err)
	}

	return toResponse(saved), nil
}

// GetByDepartment implements schedule.ScheduleService.
func (s *ServiceImpl) GetByDepartment(ctx context.Context, departmentID string) (schedule.ScheduleResponse, error) {
	sched, err := s.ScheduleRepository.GetByDepartment(ctx, departmentID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toResponse(sched), nil
}

// List implements schedule.ScheduleService.
func (s *ServiceImpl) List(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.ScheduleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, toResponse(sched))
	}
	return responses, nil
}

// WindowStatus implements schedule.ScheduleService.
func (s *ServiceImpl) WindowStatus(ctx context.Context) (schedule.WindowStatusResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return schedule.WindowStatusResponse{}, err
	}
	if claims.DepartmentID == nil {
		return schedule.WindowStatusResponse{}, schedule.ErrScheduleNotConfigured
	}

	sched, err := s.ScheduleRepository.GetByDepartment(ctx, *claims.DepartmentID)
	if err != nil {
		return schedule.WindowStatusResponse{}, err
	}

	now := s.now().UTC()

	window, err := sched.IsWithinCheckinWindow(now)
	if err != nil {
		return schedule.WindowStatusResponse{}, fmt.Errorf("failed to evaluate check-in window: %w", err)
	}
	reached, err := sched.HasReachedCheckoutTime(now)
	if err != nil {
		return schedule.WindowStatusResponse{}, fmt.Errorf("failed to evaluate checkout threshold: %w", err)
	}
	loc, err := sched.Location()
	if err != nil {
		return schedule.WindowStatusResponse{}, fmt.Errorf("failed to resolve timezone: %w", err)
	}

	resp := schedule.WindowStatusResponse{
		CheckinAllowed:     window.Allowed,
		CheckoutReached:    reached,
		CurrentTimeLabel:   now.In(loc).Format("15:04:05"),
		DepartmentTimezone: sched.Timezone,
	}
	if window.Message != "" {
		resp.CheckinMessage = &window.Message
	}
	return resp, nil
}
