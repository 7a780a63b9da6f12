package postgresql

import (
	"context"
	"fmt"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/restday"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/database"
)

type restScheduleRepository struct {
	db *database.DB
}

func NewRestScheduleRepository(db *database.DB) restday.ScheduleRepository {
	return &restScheduleRepository{db: db}
}

// Create implements restday.ScheduleRepository.
func (r *restScheduleRepository) Create(ctx context.Context, s restday.Schedule) (restday.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_rest_schedule (user_id, days_of_week, effective_from, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	days := make([]int32, len(s.DaysOfWeek))
	for i, d := range s.DaysOfWeek {
		days[i] = int32(d)
	}

	err := q.QueryRow(ctx, query,
		s.UserID,
		days,
		s.EffectiveFrom,
		s.Notes,
	).Scan(&s.ID, &s.CreatedAt)

	if err != nil {
		return restday.Schedule{}, fmt.Errorf("failed to create rest schedule: %w", err)
	}

	return s, nil
}

// ListByUser implements restday.ScheduleRepository.
func (r *restScheduleRepository) ListByUser(ctx context.Context, userID string) ([]restday.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, days_of_week, effective_from, notes, created_at
		FROM user_rest_schedule
		WHERE user_id = $1
		ORDER BY effective_from DESC, id DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rest schedules: %w", err)
	}
	defer rows.Close()

	var schedules []restday.Schedule
	for rows.Next() {
		var s restday.Schedule
		var days []int32
		err := rows.Scan(&s.ID, &s.UserID, &days, &s.EffectiveFrom, &s.Notes, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rest schedule: %w", err)
		}
		s.DaysOfWeek = make([]int, len(days))
		for i, d := range days {
			s.DaysOfWeek[i] = int(d)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}
