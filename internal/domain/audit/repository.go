package audit

import "context"

type Repository interface {
	// Record inserts an audit entry. Failures are logged by callers but
	// never abort the audited operation.
	Record(ctx context.Context, entry Entry) error
}
