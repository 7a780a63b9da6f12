package department

import (
	"context"
	"fmt"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/department"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/validator"
)

type ServiceImpl struct {
	department.DepartmentRepository
	department.CalendarRepository
}

func NewService(
	departmentRepo department.DepartmentRepository,
	calendarRepo department.CalendarRepository,
) department.Service {
	return &ServiceImpl{
		DepartmentRepository: departmentRepo,
		CalendarRepository:   calendarRepo,
	}
}

func entryToResponse(e department.CalendarEntry) department.CalendarEntryResponse {
	return department.CalendarEntryResponse{
		ID:           e.ID,
		DepartmentID: e.DepartmentID,
		Date:         e.Date.Format("2006-01-02"),
		Label:        e.Label,
	}
}

// List implements department.Service.
func (s *ServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.DepartmentResponse{
			ID:   d.ID,
			Name: d.Name,
		})
	}
	return responses, nil
}

// AddNonWorkingDay implements department.Service.
func (s *ServiceImpl) AddNonWorkingDay(ctx context.Context, departmentID string, req department.AddCalendarEntryRequest) (department.CalendarEntryResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return department.CalendarEntryResponse{}, err
	}
	if claims.Role != user.RoleGlobalManager {
		return department.CalendarEntryResponse{}, user.ErrGlobalManagerOnly
	}

	if err := req.Validate(); err != nil {
		return department.CalendarEntryResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, departmentID); err != nil {
		return department.CalendarEntryResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	entry, err := s.CalendarRepository.AddNonWorkingDay(ctx, department.CalendarEntry{
		DepartmentID: departmentID,
		Date:         date,
		Label:        req.Label,
	})
	if err != nil {
		return department.CalendarEntryResponse{}, fmt.Errorf("failed to add non-working day: %w", err)
	}

	return entryToResponse(entry), nil
}

// ListNonWorkingDays implements department.Service.
func (s *ServiceImpl) ListNonWorkingDays(ctx context.Context, departmentID string, from, to string) ([]department.CalendarEntryResponse, error) {
	fromDate, okFrom := validator.IsValidDate(from)
	toDate, okTo := validator.IsValidDate(to)
	if !okFrom || !okTo {
		return nil, validator.ValidationErrors{{
			Field:   "range",
			Message: "from and to must be YYYY-MM-DD",
		}}
	}

	entries, err := s.CalendarRepository.ListNonWorkingDays(ctx, departmentID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list non-working days: %w", err)
	}

	responses := make([]department.CalendarEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, entryToResponse(e))
	}
	return responses, nil
}
