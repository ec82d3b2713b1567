package supplement

import (
	"context"
	"time"
)

// Service tracks daily supplement intake against the configured plan.
type Service interface {
	// Plan returns the supplements scheduled for ref's day with their
	// intake state, in configuration order.
	Plan(ctx context.Context, ref time.Time) ([]Status, error)

	// RecordIntake marks the supplement loosely matching name as taken at
	// ref. Recording twice returns ErrAlreadyTaken with the earlier state.
	RecordIntake(ctx context.Context, name string, ref time.Time) (Status, error)
}
