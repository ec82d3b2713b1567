package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-scheduling-assistant/internal/agenda/repository"
	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/internal/supplement"
)

// pingPending lists the rest of the day and nudges the user when
// non-completed events remain. Quiet when there is nothing left.
func (s *Service) pingPending(ctx context.Context) {
	now := time.Now().In(s.dates.Location())

	events, err := s.repo.ListEvents(ctx, repository.ListEventsOptions{
		From: now,
		To:   s.dates.EndOfDay(now),
	})
	if err != nil {
		s.l.Errorf(ctx, "%s: list failed: %v", LogPrefixPending, err)
		return
	}

	var pending []model.CandidateEvent
	for _, ev := range events {
		if ev.Completed() {
			continue
		}
		pending = append(pending, ev)
	}
	if len(pending) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString(HeaderPending)
	for _, ev := range pending {
		when := "todo el día"
		if !ev.AllDay {
			when = ev.Start.In(s.dates.Location()).Format("15:04")
		}
		fmt.Fprintf(&b, "\n• %s  %s", when, ev.DisplayTitle())
	}
	s.send(ctx, LogPrefixPending, b.String())
}

// rollover moves today's unfinished timed events to the same clock time
// tomorrow. All-day events stay: they carry no pending work by themselves.
func (s *Service) rollover(ctx context.Context) {
	now := time.Now().In(s.dates.Location())

	events, err := s.repo.ListEvents(ctx, repository.ListEventsOptions{
		From: s.dates.StartOfDay(now),
		To:   s.dates.EndOfDay(now),
	})
	if err != nil {
		s.l.Errorf(ctx, "%s: list failed: %v", LogPrefixRollover, err)
		return
	}

	moved := 0
	for _, ev := range events {
		if ev.Completed() || ev.AllDay {
			continue
		}

		start := ev.Start.AddDate(0, 0, 1)
		end := ev.End.AddDate(0, 0, 1)
		if ev.End.IsZero() {
			end = start.Add(time.Hour)
		}

		if _, err := s.repo.MoveEvent(ctx, ev.ID, start, end); err != nil {
			s.l.Errorf(ctx, "%s: move %s failed: %v", LogPrefixRollover, ev.ID, err)
			continue
		}
		moved++
	}

	s.l.Infof(ctx, "%s: moved %d of %d events", LogPrefixRollover, moved, len(events))
	if moved > 0 {
		s.send(ctx, LogPrefixRollover, fmt.Sprintf(ReplyRolledOverTemplate, moved))
	}
}

// pingSupplement reminds about one supplement at its scheduled time and
// arms a single re-ping in case it stays untaken.
func (s *Service) pingSupplement(ctx context.Context, item supplement.Item) {
	if s.supplements == nil {
		return
	}
	if s.takenToday(ctx, item) {
		return
	}

	s.send(ctx, LogPrefixSupplement, fmt.Sprintf(ReplySupplementDueTemplate, item.Name, strings.ToLower(item.Name)))

	t := time.AfterFunc(s.cfg.RepingDelay, func() {
		nagCtx := context.Background()
		if s.takenToday(nagCtx, item) {
			return
		}
		s.send(nagCtx, LogPrefixSupplement, fmt.Sprintf(ReplySupplementNagTemplate, item.Name))
	})

	s.mu.Lock()
	s.timers = append(s.timers, t)
	s.mu.Unlock()
}

func (s *Service) takenToday(ctx context.Context, item supplement.Item) bool {
	plan, err := s.supplements.Plan(ctx, time.Now().In(s.dates.Location()))
	if err != nil {
		s.l.Errorf(ctx, "%s: plan failed: %v", LogPrefixSupplement, err)
		return false
	}
	for _, st := range plan {
		if st.Item.Name == item.Name {
			return st.Taken
		}
	}
	return false
}
