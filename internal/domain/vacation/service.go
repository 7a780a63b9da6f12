package vacation

import "context"

// Service handles vacation requests, their review, and balance preview.
type Service interface {
	// Create files a pending request for the caller
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	// Cancel withdraws the caller's own pending request
	Cancel(ctx context.Context, requestID string) (RequestResponse, error)

	// Review approves or rejects a pending request (department heads and
	// global managers)
	Review(ctx context.Context, req ReviewRequestRequest) (RequestResponse, error)

	// Balance previews the caller's accrued balance for a year
	Balance(ctx context.Context, year int) (BalanceResponse, error)

	// Overview bundles balance, own requests and, for reviewers, the
	// pending queue
	Overview(ctx context.Context, year int) (OverviewResponse, error)
}
