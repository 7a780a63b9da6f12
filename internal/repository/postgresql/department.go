package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/department"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM departments WHERE id = $1`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM departments ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

type departmentCalendarRepository struct {
	db *database.DB
}

func NewDepartmentCalendarRepository(db *database.DB) department.CalendarRepository {
	return &departmentCalendarRepository{db: db}
}

// AddNonWorkingDay implements department.CalendarRepository.
func (r *departmentCalendarRepository) AddNonWorkingDay(ctx context.Context, entry department.CalendarEntry) (department.CalendarEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO department_calendar (department_id, date, label)
		VALUES ($1, $2, $3)
		ON CONFLICT (department_id, date) DO UPDATE SET label = EXCLUDED.label
		RETURNING id, department_id, date, label, created_at
	`

	var saved department.CalendarEntry
	err := q.QueryRow(ctx, query, entry.DepartmentID, entry.Date, entry.Label).Scan(
		&saved.ID, &saved.DepartmentID, &saved.Date, &saved.Label, &saved.CreatedAt,
	)
	if err != nil {
		return department.CalendarEntry{}, fmt.Errorf("failed to add non-working day: %w", err)
	}

	return saved, nil
}

// IsNonWorkingDay implements department.CalendarRepository.
func (r *departmentCalendarRepository) IsNonWorkingDay(ctx context.Context, departmentID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM department_calendar
			WHERE department_id = $1 AND date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, departmentID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check non-working day: %w", err)
	}

	return exists, nil
}

// ListNonWorkingDays implements department.CalendarRepository.
func (r *departmentCalendarRepository) ListNonWorkingDays(ctx context.Context, departmentID string, from, to time.Time) ([]department.CalendarEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, date, label, created_at
		FROM department_calendar
		WHERE department_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, departmentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list non-working days: %w", err)
	}
	defer rows.Close()

	var entries []department.CalendarEntry
	for rows.Next() {
		var e department.CalendarEntry
		if err := rows.Scan(&e.ID, &e.DepartmentID, &e.Date, &e.Label, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan calendar entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
