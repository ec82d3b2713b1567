package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"personal-scheduling-assistant/internal/agenda"
	"personal-scheduling-assistant/internal/agenda/repository"
	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/pkg/datemath"
)

// Resolve finds the calendar event a delete/complete intent refers to by
// scoring stored titles against the query text. It performs no writes:
// zero matches report NOT_FOUND and several report NEEDS_DISAMBIGUATION,
// never an automatic pick, even on tied scores.
func (uc *implUseCase) Resolve(ctx context.Context, intent model.Intent, now time.Time) (model.ResolvedAction, error) {
	if intent.Kind != model.KindDeleteEvent && intent.Kind != model.KindCompleteEvent {
		return model.ResolvedAction{}, fmt.Errorf("%w: %s", agenda.ErrNotResolvable, intent.Kind)
	}
	query := strings.TrimSpace(intent.QueryText)
	if query == "" {
		return model.ResolvedAction{}, agenda.ErrNotResolvable
	}

	// Search window: the configured days around now, or the single day the
	// intent carries as a date hint.
	from := uc.dates.StartOfDay(now.AddDate(0, 0, -uc.resolveWindowDays))
	to := uc.dates.EndOfDay(now.AddDate(0, 0, uc.resolveWindowDays))
	if intent.Start != nil {
		from = uc.dates.StartOfDay(*intent.Start)
		to = uc.dates.EndOfDay(*intent.Start)
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{From: from, To: to})
	if err != nil {
		uc.l.Errorf(ctx, "%s: list failed: %v", LogPrefixResolve, err)
		return model.ResolvedAction{}, fmt.Errorf("failed to search candidate events: %w", err)
	}

	type scoredEvent struct {
		event model.CandidateEvent
		score float64
	}
	var matches []scoredEvent
	for _, ev := range events {
		// A completed event cannot be completed again.
		if intent.Kind == model.KindCompleteEvent && ev.Completed() {
			continue
		}
		if s := matchScore(query, ev.DisplayTitle()); s >= matchThreshold {
			matches = append(matches, scoredEvent{event: ev, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].event.Start.Before(matches[j].event.Start)
	})

	action := model.ResolvedAction{Kind: intent.Kind}
	switch len(matches) {
	case 0:
		action.Status = model.ResolutionNotFound
		uc.l.Infof(ctx, "%s: no candidates for %q", LogPrefixResolve, query)
	case 1:
		action.Status = model.ResolutionMatched
		action.EventID = matches[0].event.ID
		action.Event = matches[0].event
		uc.l.Infof(ctx, "%s: %q matched event %s", LogPrefixResolve, query, action.EventID)
	default:
		action.Status = model.ResolutionNeedsDisambiguation
		limit := len(matches)
		if limit > maxCandidates {
			limit = maxCandidates
		}
		for _, m := range matches[:limit] {
			action.Candidates = append(action.Candidates, m.event)
		}
		uc.l.Infof(ctx, "%s: %d candidates for %q", LogPrefixResolve, len(matches), query)
	}
	return action, nil
}

// matchScore rates how well a stored title satisfies the query, with both
// sides normalized (lowercase, accents folded).
func matchScore(query, title string) float64 {
	q := datemath.Normalize(query)
	t := datemath.Normalize(title)
	if q == "" || t == "" {
		return 0
	}
	if q == t {
		return scoreExact
	}
	if strings.Contains(t, q) {
		return scoreSubstring
	}

	titleWords := make(map[string]bool)
	for _, w := range strings.Fields(t) {
		titleWords[w] = true
	}

	queryWords := strings.Fields(q)
	present := 0
	for _, w := range queryWords {
		if titleWords[w] {
			present++
		}
	}
	if present == len(queryWords) {
		return scoreAllWords
	}
	return float64(present) / float64(len(queryWords)) / 2
}
