package attendance

import "context"

// MarkService defines the mark submission and query operations.
type MarkService interface {
	// SubmitMark runs the full validation decision procedure for an IN or
	// OUT punch and persists the mark when every guard passes
	SubmitMark(ctx context.Context, req SubmitMarkRequest) (SubmitMarkResponse, error)

	// GetToday retrieves the caller's marks for the current department-local
	// day plus the derived eligibility flags
	GetToday(ctx context.Context) (TodayResponse, error)

	// GetHistory derives the per-day status rows for a date range
	GetHistory(ctx context.Context, filter HistoryFilter) (HistoryResponse, error)
}
