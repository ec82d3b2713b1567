package supplement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-scheduling-assistant/pkg/datemath"
	pkgLog "personal-scheduling-assistant/pkg/log"
)

const logPrefixSupplement = "internal.supplement"

type implService struct {
	l     pkgLog.Logger
	store *Store
	items []Item
	loc   *time.Location
}

// Ensure implService implements Service interface
var _ Service = (*implService)(nil)

// New creates a new supplement Service instance.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l pkgLog.Logger, store *Store, items []Item, loc *time.Location) *implService {
	return &implService{
		l:     l,
		store: store,
		items: items,
		loc:   loc,
	}
}

func (s *implService) Plan(ctx context.Context, ref time.Time) ([]Status, error) {
	ref = ref.In(s.loc)
	taken, err := s.store.Load(dateKey(ref))
	if err != nil {
		s.l.Errorf(ctx, "%s: load failed: %v", logPrefixSupplement, err)
		return nil, err
	}

	var plan []Status
	for _, item := range s.items {
		if !item.ScheduledOn(ref.Weekday()) {
			continue
		}
		st := Status{Item: item}
		if at, ok := taken[normalize(item.Name)]; ok {
			st.Taken = true
			st.TakenAt = at
		} else {
			st.Due = pastScheduled(item, ref)
		}
		plan = append(plan, st)
	}
	return plan, nil
}

func (s *implService) RecordIntake(ctx context.Context, name string, ref time.Time) (Status, error) {
	ref = ref.In(s.loc)

	item, ok := s.match(name)
	if !ok {
		return Status{}, fmt.Errorf("%w: %q", ErrUnknownSupplement, name)
	}
	if !item.ScheduledOn(ref.Weekday()) {
		return Status{Item: item}, fmt.Errorf("%w: %s", ErrNotScheduled, item.Name)
	}

	taken, err := s.store.Load(dateKey(ref))
	if err != nil {
		s.l.Errorf(ctx, "%s: load failed: %v", logPrefixSupplement, err)
		return Status{}, err
	}
	if at, ok := taken[normalize(item.Name)]; ok {
		return Status{Item: item, Taken: true, TakenAt: at}, ErrAlreadyTaken
	}

	clock := ref.Format("15:04")
	if err := s.store.MarkTaken(dateKey(ref), normalize(item.Name), clock); err != nil {
		s.l.Errorf(ctx, "%s: mark failed: %v", logPrefixSupplement, err)
		return Status{}, err
	}
	s.l.Infof(ctx, "%s: %s taken at %s", logPrefixSupplement, item.Name, clock)
	return Status{Item: item, Taken: true, TakenAt: clock}, nil
}

// match finds the configured item whose name loosely matches the user's
// words, in either containment direction ("creatina" matches "Creatina
// monohidrato" and vice versa).
func (s *implService) match(name string) (Item, bool) {
	norm := normalize(name)
	if norm == "" {
		return Item{}, false
	}
	for _, item := range s.items {
		itemNorm := normalize(item.Name)
		if strings.Contains(itemNorm, norm) || strings.Contains(norm, itemNorm) {
			return item, true
		}
	}

	// Second pass per word, so filler words survive: "la creatina" still
	// finds "Creatina monohidrato". Words under three letters are noise
	// ("la", "el", "de").
	for _, item := range s.items {
		itemNorm := normalize(item.Name)
		for _, w := range strings.Fields(norm) {
			if len(w) >= 3 && strings.Contains(itemNorm, w) {
				return item, true
			}
		}
	}
	return Item{}, false
}

func pastScheduled(item Item, ref time.Time) bool {
	return ref.Hour()*60+ref.Minute() >= item.Hour*60+item.Minute
}

func dateKey(ref time.Time) string {
	return ref.Format("2006-01-02")
}

func normalize(s string) string {
	return datemath.Normalize(s)
}
