package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"personal-scheduling-assistant/internal/agenda/repository"
	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/pkg/gcalendar"
)

const logPrefixGCal = "agenda.repository.gcal"

// CreateEvent inserts an event into the calendar.
func (r *Repository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.CandidateEvent, error) {
	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  r.calendarID,
		Summary:     opt.Title,
		Description: opt.Description,
		Location:    opt.Location,
		StartTime:   opt.Start,
		EndTime:     opt.End,
		Timezone:    r.timezone,
		AllDay:      opt.AllDay,
		ColorID:     opt.ColorID,
	})
	if err != nil {
		return model.CandidateEvent{}, fmt.Errorf("failed to create calendar event: %w", err)
	}
	r.l.Debugf(ctx, "%s: created event %s", logPrefixGCal, created.ID)
	return candidateFromEvent(created), nil
}

// ListEvents returns the events between From and To, ordered by start time.
func (r *Repository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.CandidateEvent, error) {
	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    opt.From,
		TimeMax:    opt.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	candidates := make([]model.CandidateEvent, 0, len(events))
	for _, ev := range events {
		candidates = append(candidates, candidateFromEvent(ev))
	}
	return candidates, nil
}

// RenameEvent replaces the event title, leaving everything else untouched.
func (r *Repository) RenameEvent(ctx context.Context, eventID, title string) (model.CandidateEvent, error) {
	patched, err := r.client.PatchEvent(ctx, gcalendar.PatchEventRequest{
		CalendarID: r.calendarID,
		EventID:    eventID,
		Summary:    &title,
	})
	if err != nil {
		return model.CandidateEvent{}, r.wrapErr("patch", err)
	}
	return candidateFromEvent(patched), nil
}

// MoveEvent reschedules the event, keeping title and everything else.
func (r *Repository) MoveEvent(ctx context.Context, eventID string, start, end time.Time) (model.CandidateEvent, error) {
	patched, err := r.client.PatchEvent(ctx, gcalendar.PatchEventRequest{
		CalendarID: r.calendarID,
		EventID:    eventID,
		StartTime:  &start,
		EndTime:    &end,
		Timezone:   r.timezone,
	})
	if err != nil {
		return model.CandidateEvent{}, r.wrapErr("patch", err)
	}
	return candidateFromEvent(patched), nil
}

// DeleteEvent removes the event from the calendar.
func (r *Repository) DeleteEvent(ctx context.Context, eventID string) error {
	if err := r.client.DeleteEvent(ctx, r.calendarID, eventID); err != nil {
		return r.wrapErr("delete", err)
	}
	return nil
}

// wrapErr maps the client's not-found sentinel onto the repository one so
// the usecase never imports the transport package.
func (r *Repository) wrapErr(op string, err error) error {
	if errors.Is(err, gcalendar.ErrEventNotFound) {
		return fmt.Errorf("failed to %s calendar event: %w", op, repository.ErrEventNotFound)
	}
	return fmt.Errorf("failed to %s calendar event: %w", op, err)
}

func candidateFromEvent(ev *gcalendar.Event) model.CandidateEvent {
	return model.CandidateEvent{
		ID:      ev.ID,
		Title:   ev.Summary,
		Start:   ev.StartTime,
		End:     ev.EndTime,
		AllDay:  ev.AllDay,
		ColorID: ev.ColorID,
	}
}
