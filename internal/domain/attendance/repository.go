package attendance

import (
	"context"
	"time"
)

// MarkRepository defines data access for attendance marks.
type MarkRepository interface {
	// Create inserts a validated mark
	Create(ctx context.Context, mark Mark) (Mark, error)

	// ListBetween retrieves a user's marks in [from, to), timestamp ascending
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]Mark, error)

	// AcquireSubmissionLock serializes mark submissions per user for the
	// duration of the surrounding transaction. Row locks cannot cover a day
	// with no rows yet, so callers must take this lock before reading the
	// day's marks
	AcquireSubmissionLock(ctx context.Context, userID string) error

	// ListForUsersBetween retrieves marks for a set of users in [from, to),
	// grouped by user, timestamp ascending
	ListForUsersBetween(ctx context.Context, userIDs []string, from, to time.Time) (map[string][]Mark, error)
}
