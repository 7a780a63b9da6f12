package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/schedule"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, department_id, checkin_start_time, checkin_end_time,
	   checkout_start_time, checkout_end_time, timezone,
	   allow_early_checkin, allow_late_checkout, created_at, updated_at`

func scanSchedule(row pgx.Row) (schedule.DepartmentSchedule, error) {
	var s schedule.DepartmentSchedule
	err := row.Scan(
		&s.ID, &s.DepartmentID, &s.CheckinStartTime, &s.CheckinEndTime,
		&s.CheckoutStartTime, &s.CheckoutEndTime, &s.Timezone,
		&s.AllowEarlyCheckin, &s.AllowLateCheckout, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByDepartment implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByDepartment(ctx context.Context, departmentID string) (schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM department_schedules
		WHERE department_id = $1
	`

	s, err := scanSchedule(q.QueryRow(ctx, query, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.DepartmentSchedule{}, schedule.ErrScheduleNotConfigured
		}
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to get department schedule: %w", err)
	}

	return s, nil
}

// Upsert implements schedule.ScheduleRepository. department_id is unique,
// so the conflict target gives one schedule per department.
func (r *scheduleRepository) Upsert(ctx context.Context, s schedule.DepartmentSchedule) (schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO department_schedules (
			department_id, checkin_start_time, checkin_end_time,
			checkout_start_time, checkout_end_time, timezone,
			allow_early_checkin, allow_late_checkout
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (department_id) DO UPDATE SET
			checkin_start_time = EXCLUDED.checkin_start_time,
			checkin_end_time = EXCLUDED.checkin_end_time,
			checkout_start_time = EXCLUDED.checkout_start_time,
			checkout_end_time = EXCLUDED.checkout_end_time,
			timezone = EXCLUDED.timezone,
			allow_early_checkin = EXCLUDED.allow_early_checkin,
			allow_late_checkout = EXCLUDED.allow_late_checkout,
			updated_at = NOW()
		RETURNING ` + scheduleColumns + `
	`

	saved, err := scanSchedule(q.QueryRow(ctx, query,
		s.DepartmentID,
		s.CheckinStartTime,
		s.CheckinEndTime,
		s.CheckoutStartTime,
		s.CheckoutEndTime,
		s.Timezone,
		s.AllowEarlyCheckin,
		s.AllowLateCheckout,
	))
	if err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to upsert department schedule: %w", err)
	}

	return saved, nil
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepository) List(ctx context.Context) ([]schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM department_schedules
		ORDER BY department_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list department schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.DepartmentSchedule
	for rows.Next() {
		var s schedule.DepartmentSchedule
		err := rows.Scan(
			&s.ID, &s.DepartmentID, &s.CheckinStartTime, &s.CheckinEndTime,
			&s.CheckoutStartTime, &s.CheckoutEndTime, &s.Timezone,
			&s.AllowEarlyCheckin, &s.AllowLateCheckout, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}
