package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/attendance"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type markRepository struct {
	db *database.DB
}

func NewMarkRepository(db *database.DB) attendance.MarkRepository {
	return &markRepository{db: db}
}

const markColumns = `id, user_id, mark_type, timestamp, latitude, longitude,
	   accuracy, distance_to_center, inside_geofence, blocked, block_reason, created_at`

func scanMarks(rows pgx.Rows) ([]attendance.Mark, error) {
	defer rows.Close()

	var marks []attendance.Mark
	for rows.Next() {
		var m attendance.Mark
		err := rows.Scan(
			&m.ID, &m.UserID, &m.MarkType, &m.Timestamp, &m.Latitude, &m.Longitude,
			&m.Accuracy, &m.DistanceToCenter, &m.InsideGeofence, &m.Blocked, &m.BlockReason, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance mark: %w", err)
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

// Create implements attendance.MarkRepository.
func (r *markRepository) Create(ctx context.Context, mark attendance.Mark) (attendance.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_marks (
			user_id, mark_type, timestamp, latitude, longitude,
			accuracy, distance_to_center, inside_geofence, blocked, block_reason
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		mark.UserID,
		mark.MarkType,
		mark.Timestamp,
		mark.Latitude,
		mark.Longitude,
		mark.Accuracy,
		mark.DistanceToCenter,
		mark.InsideGeofence,
		mark.Blocked,
		mark.BlockReason,
	).Scan(&mark.ID, &mark.CreatedAt)

	if err != nil {
		return attendance.Mark{}, fmt.Errorf("failed to create attendance mark: %w", err)
	}

	return mark, nil
}

// ListBetween implements attendance.MarkRepository.
func (r *markRepository) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]attendance.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + markColumns + `
		FROM attendance_marks
		WHERE user_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance marks: %w", err)
	}

	return scanMarks(rows)
}

// AcquireSubmissionLock implements attendance.MarkRepository. A row lock
// on today's marks would not stop two first-INs racing on an empty day
// under READ COMMITTED, so submissions serialize on a per-user advisory
// lock held until the transaction ends.
func (r *markRepository) AcquireSubmissionLock(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID)
	if err != nil {
		return fmt.Errorf("failed to acquire mark submission lock: %w", err)
	}
	return nil
}

// ListForUsersBetween implements attendance.MarkRepository.
func (r *markRepository) ListForUsersBetween(ctx context.Context, userIDs []string, from, to time.Time) (map[string][]attendance.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + markColumns + `
		FROM attendance_marks
		WHERE user_id = ANY($1)
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, userIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance marks for users: %w", err)
	}

	marks, err := scanMarks(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]attendance.Mark, len(userIDs))
	for _, m := range marks {
		grouped[m.UserID] = append(grouped[m.UserID], m)
	}
	return grouped, nil
}
