package agenda

import (
	"context"
	"time"

	"personal-scheduling-assistant/internal/model"
)

// UseCase defines the business logic interface for the agenda domain.
type UseCase interface {
	// Execute runs a create or list intent against the calendar. Backend
	// failures come back inside the Outcome, never as an error; the error
	// return fires only on contract violations (non-executable intents).
	Execute(ctx context.Context, intent model.Intent) (model.Outcome, error)

	// Resolve finds the calendar event a delete/complete intent refers to.
	// Read-only and idempotent: the same query against an unchanged window
	// yields the same result.
	Resolve(ctx context.Context, intent model.Intent, now time.Time) (model.ResolvedAction, error)

	// ExecuteResolved applies a MATCHED delete/complete action.
	ExecuteResolved(ctx context.Context, action model.ResolvedAction) (model.Outcome, error)
}
