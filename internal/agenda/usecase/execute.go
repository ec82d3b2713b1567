package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"personal-scheduling-assistant/internal/agenda"
	"personal-scheduling-assistant/internal/agenda/repository"
	"personal-scheduling-assistant/internal/model"
)

// Execute runs a create or list intent against the calendar. Backend
// failures fold into the Outcome so the caller can render them; the error
// return fires only when the intent violates the executor's contract.
func (uc *implUseCase) Execute(ctx context.Context, intent model.Intent) (model.Outcome, error) {
	switch intent.Kind {
	case model.KindCreateEvent:
		return uc.executeCreate(ctx, intent)
	case model.KindListEvents:
		return uc.executeList(ctx, intent)
	default:
		return model.Outcome{}, fmt.Errorf("%w: %s", agenda.ErrNotExecutable, intent.Kind)
	}
}

func (uc *implUseCase) executeCreate(ctx context.Context, intent model.Intent) (model.Outcome, error) {
	if !intent.Executable() {
		return model.Outcome{}, fmt.Errorf("%w: incomplete create intent", agenda.ErrNotExecutable)
	}

	start := *intent.Start
	var end time.Time
	switch {
	case intent.AllDay:
		end = start.AddDate(0, 0, 1)
	case intent.End != nil:
		end = *intent.End
	default:
		end = start.Add(uc.defaultDuration)
	}

	created, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		Title:       intent.Title,
		Description: intent.Description,
		Location:    intent.Location,
		Start:       start,
		End:         end,
		AllDay:      intent.AllDay,
		ColorID:     intent.Priority.ColorID(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: create failed: %v", LogPrefixExecute, err)
		return model.Outcome{Status: model.OutcomeBackendError, Detail: err.Error()}, nil
	}
	uc.l.Infof(ctx, "%s: created %q (%s)", LogPrefixExecute, created.Title, created.ID)

	outcome := model.Outcome{Status: model.OutcomeCreated, EventID: created.ID, Event: created}
	if !intent.AllDay {
		outcome.Overlaps = uc.findOverlaps(ctx, created.ID, start, end)
	}
	return outcome, nil
}

// findOverlaps lists already-scheduled timed events crossing the new
// event's span. A failure here only costs the warning, never the create.
func (uc *implUseCase) findOverlaps(ctx context.Context, excludeID string, start, end time.Time) []model.CandidateEvent {
	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		From: uc.dates.StartOfDay(start),
		To:   uc.dates.EndOfDay(end),
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: overlap check failed: %v", LogPrefixExecute, err)
		return nil
	}

	var overlaps []model.CandidateEvent
	for _, ev := range events {
		if ev.ID == excludeID || ev.AllDay {
			continue
		}
		if ev.Start.Before(end) && ev.End.After(start) {
			overlaps = append(overlaps, ev)
		}
	}
	return overlaps
}

func (uc *implUseCase) executeList(ctx context.Context, intent model.Intent) (model.Outcome, error) {
	if intent.Start == nil {
		return model.Outcome{}, fmt.Errorf("%w: list intent without a window", agenda.ErrNotExecutable)
	}
	days := intent.RangeDays
	if days < 1 {
		days = 1
	}
	from := uc.dates.StartOfDay(*intent.Start)
	to := uc.dates.EndOfDay(from.AddDate(0, 0, days-1))

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{From: from, To: to})
	if err != nil {
		uc.l.Errorf(ctx, "%s: list failed: %v", LogPrefixExecute, err)
		return model.Outcome{Status: model.OutcomeBackendError, Detail: err.Error()}, nil
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return model.Outcome{Status: model.OutcomeListed, Events: events}, nil
}

// ExecuteResolved applies a MATCHED delete/complete action. It refuses
// anything unresolved: disambiguation and not-found never reach the
// backend.
func (uc *implUseCase) ExecuteResolved(ctx context.Context, action model.ResolvedAction) (model.Outcome, error) {
	if action.Status != model.ResolutionMatched || action.EventID == "" {
		return model.Outcome{}, fmt.Errorf("%w: status %s", agenda.ErrNotMatched, action.Status)
	}

	switch action.Kind {
	case model.KindDeleteEvent:
		err := uc.repo.DeleteEvent(ctx, action.EventID)
		if err != nil && !errors.Is(err, repository.ErrEventNotFound) {
			uc.l.Errorf(ctx, "%s: delete failed: %v", LogPrefixExecute, err)
			return model.Outcome{Status: model.OutcomeBackendError, Detail: err.Error()}, nil
		}
		// An event already gone from the backend still counts as deleted.
		uc.l.Infof(ctx, "%s: deleted event %s", LogPrefixExecute, action.EventID)
		return model.Outcome{Status: model.OutcomeDeleted, EventID: action.EventID, Event: action.Event}, nil

	case model.KindCompleteEvent:
		renamed, err := uc.repo.RenameEvent(ctx, action.EventID, model.MarkCompleted(action.Event.Title))
		if err != nil {
			uc.l.Errorf(ctx, "%s: complete failed: %v", LogPrefixExecute, err)
			return model.Outcome{Status: model.OutcomeBackendError, Detail: err.Error()}, nil
		}
		uc.l.Infof(ctx, "%s: completed event %s", LogPrefixExecute, renamed.ID)
		return model.Outcome{Status: model.OutcomeCompleted, EventID: renamed.ID, Event: renamed}, nil

	default:
		return model.Outcome{}, fmt.Errorf("%w: kind %s", agenda.ErrNotMatched, action.Kind)
	}
}
