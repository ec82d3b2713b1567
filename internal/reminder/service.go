package reminder

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"personal-scheduling-assistant/internal/supplement"
)

// Start registers all jobs and starts the cron scheduler.
func (s *Service) Start() error {
	ctx := context.Background()

	if _, err := s.cron.AddFunc(s.cfg.PendingSpec, func() { s.pingPending(context.Background()) }); err != nil {
		return fmt.Errorf("invalid pending spec %q: %w", s.cfg.PendingSpec, err)
	}
	if _, err := s.cron.AddFunc(s.cfg.RolloverSpec, func() { s.rollover(context.Background()) }); err != nil {
		return fmt.Errorf("invalid rollover spec %q: %w", s.cfg.RolloverSpec, err)
	}

	for _, item := range s.cfg.Supplements {
		it := item
		if _, err := s.cron.AddFunc(supplementSpec(it), func() { s.pingSupplement(context.Background(), it) }); err != nil {
			return fmt.Errorf("invalid schedule for supplement %s: %w", it.Name, err)
		}
	}

	s.cron.Start()
	s.l.Infof(ctx, "%s: scheduled %d jobs", LogPrefixStart, len(s.cron.Entries()))
	return nil
}

// Stop drains running jobs and cancels pending re-pings. Safe to call
// multiple times.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		<-s.cron.Stop().Done()

		s.mu.Lock()
		for _, t := range s.timers {
			t.Stop()
		}
		s.timers = nil
		s.mu.Unlock()
	})
}

// supplementSpec renders the cron expression for one supplement: its clock
// time on its configured weekdays, every day when none are set.
func supplementSpec(item supplement.Item) string {
	dow := "*"
	if len(item.Days) > 0 {
		parts := make([]string, 0, len(item.Days))
		for _, d := range item.Days {
			parts = append(parts, strconv.Itoa(int(d)))
		}
		dow = strings.Join(parts, ",")
	}
	return fmt.Sprintf("%d %d * * %s", item.Minute, item.Hour, dow)
}

func (s *Service) send(ctx context.Context, prefix, text string) {
	if err := s.bot.SendMessage(s.cfg.ChatID, text); err != nil {
		s.l.Errorf(ctx, "%s: send failed: %v", prefix, err)
	}
}
