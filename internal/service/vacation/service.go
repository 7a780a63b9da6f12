package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/vacation"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
)

type ServiceImpl struct {
	vacation.RequestRepository
	vacation.WorkedDaysRepository
	accrualRate float64
	now         func() time.Time
}

func NewService(
	requestRepo vacation.RequestRepository,
	workedDaysRepo vacation.WorkedDaysRepository,
) vacation.Service {
	return &ServiceImpl{
		RequestRepository:    requestRepo,
		WorkedDaysRepository: workedDaysRepo,
		accrualRate:          DefaultAccrualRate,
		now:                  time.Now,
	}
}

func requestToResponse(r vacation.Request) vacation.RequestResponse {
	resp := vacation.RequestResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		DepartmentID:  r.DepartmentID,
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		RequestedDays: r.RequestedDays,
		Status:        string(r.Status),
		Reason:        r.Reason,
		ReviewComment: r.ReviewComment,
		ReviewedBy:    r.ReviewedBy,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.ReviewedAt != nil {
		reviewed := r.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &reviewed
	}
	return resp
}

// Create implements vacation.Service.
func (s *ServiceImpl) Create(ctx context.Context, req vacation.CreateRequestRequest) (vacation.RequestResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	caller := user.User{Role: claims.Role}
	if !caller.CanRequestPersonalVacations() {
		return vacation.RequestResponse{}, vacation.ErrGlobalManagerBarred
	}
	if claims.DepartmentID == nil {
		return vacation.RequestResponse{}, user.ErrDepartmentNotAssigned
	}

	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	days := RequestedDaysInclusive(start, end)
	if days == 0 {
		return vacation.RequestResponse{}, vacation.ErrInvalidDateRange
	}

	created, err := s.RequestRepository.Create(ctx, vacation.Request{
		UserID:        claims.UserID,
		DepartmentID:  *claims.DepartmentID,
		StartDate:     start,
		EndDate:       end,
		RequestedDays: days,
		Status:        vacation.StatusPending,
		Reason:        req.Reason,
	})
	if err != nil {
		return vacation.RequestResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return requestToResponse(created), nil
}

// Cancel implements vacation.Service. Only the requester may withdraw, and
// only while the request is still pending.
func (s *ServiceImpl) Cancel(ctx context.Context, requestID string) (vacation.RequestResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	req, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	if req.UserID != claims.UserID {
		return vacation.RequestResponse{}, vacation.ErrNotRequester
	}

	cancelled, err := s.RequestRepository.UpdateStatus(ctx, requestID, vacation.StatusCancelled, nil, nil)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	return requestToResponse(cancelled), nil
}

// Review implements vacation.Service. Department heads may only decide
// requests from their own department; global managers decide any.
func (s *ServiceImpl) Review(ctx context.Context, req vacation.ReviewRequestRequest) (vacation.RequestResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	caller := user.User{Role: claims.Role}
	if !caller.CanReviewVacations() {
		return vacation.RequestResponse{}, user.ErrDepartmentHeadOrManager
	}

	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}

	pending, err := s.RequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	if claims.Role == user.RoleDepartmentHead {
		if claims.DepartmentID == nil || pending.DepartmentID != *claims.DepartmentID {
			return vacation.RequestResponse{}, user.ErrDepartmentHeadOrManager
		}
	}

	decision, _ := vacation.ParseStatus(req.Decision)
	reviewed, err := s.RequestRepository.UpdateStatus(ctx, req.ID, decision, &claims.UserID, req.ReviewComment)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	return requestToResponse(reviewed), nil
}

// Balance implements vacation.Service.
func (s *ServiceImpl) Balance(ctx context.Context, year int) (vacation.BalanceResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return vacation.BalanceResponse{}, err
	}
	return s.balanceFor(ctx, claims.UserID, year)
}

func (s *ServiceImpl) balanceFor(ctx context.Context, userID string, year int) (vacation.BalanceResponse, error) {
	if year == 0 {
		year = s.now().UTC().Year()
	}

	worked, err := s.WorkedDaysRepository.CountWorkedDays(ctx, userID, year)
	if err != nil {
		return vacation.BalanceResponse{}, fmt.Errorf("failed to count worked days: %w", err)
	}
	approved, err := s.RequestRepository.SumDaysByStatus(ctx, userID, year, vacation.StatusApproved)
	if err != nil {
		return vacation.BalanceResponse{}, fmt.Errorf("failed to sum approved days: %w", err)
	}
	pending, err := s.RequestRepository.SumDaysByStatus(ctx, userID, year, vacation.StatusPending)
	if err != nil {
		return vacation.BalanceResponse{}, fmt.Errorf("failed to sum pending days: %w", err)
	}

	balance := ComputeBalance(worked, s.accrualRate, approved, pending)
	return vacation.BalanceResponse{
		WorkedDays:    balance.WorkedDays,
		AccrualRate:   balance.AccrualRate,
		EarnedDays:    balance.EarnedDays,
		ApprovedDays:  balance.ApprovedDays,
		PendingDays:   balance.PendingDays,
		AvailableDays: balance.AvailableDays,
	}, nil
}

// Overview implements vacation.Service.
func (s *ServiceImpl) Overview(ctx context.Context, year int) (vacation.OverviewResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return vacation.OverviewResponse{}, err
	}

	balance, err := s.balanceFor(ctx, claims.UserID, year)
	if err != nil {
		return vacation.OverviewResponse{}, err
	}

	mine, err := s.RequestRepository.ListByUser(ctx, claims.UserID)
	if err != nil {
		return vacation.OverviewResponse{}, fmt.Errorf("failed to list own requests: %w", err)
	}

	resp := vacation.OverviewResponse{
		Balance:    balance,
		MyRequests: make([]vacation.RequestResponse, 0, len(mine)),
	}
	for _, r := range mine {
		resp.MyRequests = append(resp.MyRequests, requestToResponse(r))
	}

	caller := user.User{Role: claims.Role}
	if caller.CanReviewVacations() {
		var scope *string
		if claims.Role == user.RoleDepartmentHead {
			scope = claims.DepartmentID
		}
		queue, err := s.RequestRepository.ListPending(ctx, scope)
		if err != nil {
			return vacation.OverviewResponse{}, fmt.Errorf("failed to list pending requests: %w", err)
		}
		for _, r := range queue {
			resp.ReviewQueue = append(resp.ReviewQueue, requestToResponse(r))
		}
	}

	return resp, nil
}
