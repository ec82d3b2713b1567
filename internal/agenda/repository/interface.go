package repository

import (
	"context"
	"time"

	"personal-scheduling-assistant/internal/model"
)

// CalendarRepository is the interface for calendar data access operations.
type CalendarRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.CandidateEvent, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.CandidateEvent, error)
	RenameEvent(ctx context.Context, eventID, title string) (model.CandidateEvent, error)
	MoveEvent(ctx context.Context, eventID string, start, end time.Time) (model.CandidateEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
