package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/vacation"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacationRequestRepository struct {
	db *database.DB
}

func NewVacationRequestRepository(db *database.DB) vacation.RequestRepository {
	return &vacationRequestRepository{db: db}
}

const vacationColumns = `id, user_id, department_id, start_date, end_date, requested_days,
	   status, reason, review_comment, reviewed_by, reviewed_at, created_at, updated_at`

func scanVacationRequest(row pgx.Row) (vacation.Request, error) {
	var v vacation.Request
	err := row.Scan(
		&v.ID, &v.UserID, &v.DepartmentID, &v.StartDate, &v.EndDate, &v.RequestedDays,
		&v.Status, &v.Reason, &v.ReviewComment, &v.ReviewedBy, &v.ReviewedAt, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

// Create implements vacation.RequestRepository.
func (r *vacationRequestRepository) Create(ctx context.Context, req vacation.Request) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_requests (
			user_id, department_id, start_date, end_date, requested_days, status, reason
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING ` + vacationColumns + `
	`

	created, err := scanVacationRequest(q.QueryRow(ctx, query,
		req.UserID,
		req.DepartmentID,
		req.StartDate,
		req.EndDate,
		req.RequestedDays,
		req.Status,
		req.Reason,
	))
	if err != nil {
		return vacation.Request{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return created, nil
}

// GetByID implements vacation.RequestRepository.
func (r *vacationRequestRepository) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vacationColumns + `
		FROM vacation_requests
		WHERE id = $1
	`

	v, err := scanVacationRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Request{}, vacation.ErrRequestNotFound
		}
		return vacation.Request{}, fmt.Errorf("failed to get vacation request: %w", err)
	}

	return v, nil
}

func (r *vacationRequestRepository) listQuery(ctx context.Context, query string, args ...interface{}) ([]vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	defer rows.Close()

	var requests []vacation.Request
	for rows.Next() {
		var v vacation.Request
		err := rows.Scan(
			&v.ID, &v.UserID, &v.DepartmentID, &v.StartDate, &v.EndDate, &v.RequestedDays,
			&v.Status, &v.Reason, &v.ReviewComment, &v.ReviewedBy, &v.ReviewedAt, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		requests = append(requests, v)
	}

	return requests, rows.Err()
}

// ListByUser implements vacation.RequestRepository.
func (r *vacationRequestRepository) ListByUser(ctx context.Context, userID string) ([]vacation.Request, error) {
	query := `
		SELECT ` + vacationColumns + `
		FROM vacation_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.listQuery(ctx, query, userID)
}

// ListPending implements vacation.RequestRepository.
func (r *vacationRequestRepository) ListPending(ctx context.Context, departmentID *string) ([]vacation.Request, error) {
	if departmentID != nil {
		query := `
			SELECT ` + vacationColumns + `
			FROM vacation_requests
			WHERE status = 'pending' AND department_id = $1
			ORDER BY created_at ASC
		`
		return r.listQuery(ctx, query, *departmentID)
	}

	query := `
		SELECT ` + vacationColumns + `
		FROM vacation_requests
		WHERE status = 'pending'
		ORDER BY created_at ASC
	`
	return r.listQuery(ctx, query)
}

// UpdateStatus implements vacation.RequestRepository. Only pending rows
// transition; the WHERE clause makes the state machine race-safe.
func (r *vacationRequestRepository) UpdateStatus(ctx context.Context, id string, status vacation.Status, reviewedBy *string, reviewComment *string) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacation_requests
		SET status = $1,
			reviewed_by = $2,
			review_comment = $3,
			reviewed_at = NOW(),
			updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
		RETURNING ` + vacationColumns + `
	`

	v, err := scanVacationRequest(q.QueryRow(ctx, query, status, reviewedBy, reviewComment, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Request{}, vacation.ErrAlreadyProcessed
		}
		return vacation.Request{}, fmt.Errorf("failed to update vacation request status: %w", err)
	}

	return v, nil
}

// HasApprovedVacationOn implements vacation.RequestRepository.
func (r *vacationRequestRepository) HasApprovedVacationOn(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM vacation_requests
			WHERE user_id = $1
			  AND status = 'approved'
			  AND start_date <= $2
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check approved vacation: %w", err)
	}

	return exists, nil
}

// SumDaysByStatus implements vacation.RequestRepository.
func (r *vacationRequestRepository) SumDaysByStatus(ctx context.Context, userID string, year int, status vacation.Status) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(requested_days), 0)
		FROM vacation_requests
		WHERE user_id = $1
		  AND status = $2
		  AND EXTRACT(YEAR FROM start_date) = $3
	`

	var total float64
	if err := q.QueryRow(ctx, query, userID, status, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum vacation days: %w", err)
	}

	return total, nil
}

type workedDaysRepository struct {
	db *database.DB
}

func NewWorkedDaysRepository(db *database.DB) vacation.WorkedDaysRepository {
	return &workedDaysRepository{db: db}
}

// CountWorkedDays implements vacation.WorkedDaysRepository. A day counts
// as worked when it has at least one unblocked IN mark.
func (r *workedDaysRepository) CountWorkedDays(ctx context.Context, userID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT DATE(timestamp))
		FROM attendance_marks
		WHERE user_id = $1
		  AND mark_type = 'IN'
		  AND blocked = FALSE
		  AND EXTRACT(YEAR FROM timestamp) = $2
	`

	var count int
	if err := q.QueryRow(ctx, query, userID, year).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count worked days: %w", err)
	}

	return count, nil
}
