package restday

import (
	"context"
	"fmt"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/restday"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
)

type ServiceImpl struct {
	restday.ScheduleRepository
	now func() time.Time
}

func NewService(repo restday.ScheduleRepository) restday.Service {
	return &ServiceImpl{
		ScheduleRepository: repo,
		now:                time.Now,
	}
}

func toResponse(s restday.Schedule) restday.ScheduleResponse {
	return restday.ScheduleResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		DaysOfWeek:    s.DaysOfWeek,
		EffectiveFrom: s.EffectiveFrom.Format("2006-01-02"),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Create implements restday.Service. The separation invariant is enforced
// here so a bypassed UI cannot store an invalid selection.
func (s *ServiceImpl) Create(ctx context.Context, req restday.CreateScheduleRequest) (restday.ScheduleResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return restday.ScheduleResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return restday.ScheduleResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	created, err := s.ScheduleRepository.Create(ctx, restday.Schedule{
		UserID:        claims.UserID,
		DaysOfWeek:    req.DaysOfWeek,
		EffectiveFrom: effectiveFrom,
		Notes:         req.Notes,
	})
	if err != nil {
		return restday.ScheduleResponse{}, fmt.Errorf("failed to create rest schedule: %w", err)
	}

	return toResponse(created), nil
}

// List implements restday.Service.
func (s *ServiceImpl) List(ctx context.Context) (restday.ListSchedulesResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return restday.ListSchedulesResponse{}, err
	}

	schedules, err := s.ScheduleRepository.ListByUser(ctx, claims.UserID)
	if err != nil {
		return restday.ListSchedulesResponse{}, fmt.Errorf("failed to list rest schedules: %w", err)
	}

	resp := restday.ListSchedulesResponse{
		Schedules: make([]restday.ScheduleResponse, 0, len(schedules)),
	}
	for _, sched := range schedules {
		resp.Schedules = append(resp.Schedules, toResponse(sched))
	}

	if current := restday.CurrentSchedule(schedules, s.now().UTC()); current != nil {
		currentResp := toResponse(*current)
		resp.Current = &currentResp
	}

	return resp, nil
}
